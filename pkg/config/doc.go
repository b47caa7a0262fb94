// Package config loads application configuration from environment
// variables into tagged structs.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct parsing. Every configuration type
// is parsed once and cached for the life of the process; ForceReload and
// ResetCache exist for tests that change the environment.
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//	manager := session.NewFromConfig(cfg, session.WithCookieManager(cookies))
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
