// Package httpserver runs an http.Server with graceful shutdown and a JSON
// health probe.
//
// Run blocks until the given context is cancelled or the process receives
// SIGINT or SIGTERM, then calls http.Server.Shutdown bounded by the
// configured shutdown timeout. Start and stop hooks run around that life
// cycle, and failures are wrapped with ErrStart or ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	router.Get("/healthz", httpserver.HealthCheckHandler(log, map[string]httpserver.Check{
//	    "session_store": redisstore.Healthcheck(client),
//	}))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Config is loaded from HTTP_* environment variables; zero values fall back
// to the package defaults.
package httpserver
