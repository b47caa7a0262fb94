package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/inputkit/pkg/clientip"
	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/cookie"
	"github.com/dmitrymomot/inputkit/pkg/httpserver"
	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/requestid"
	"github.com/dmitrymomot/inputkit/pkg/session"
)

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)

	log := logger.NewFromConfig(logCfg,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			session.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "inputdemo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		appCfg     AppConfig
		httpCfg    httpserver.Config
		sessionCfg session.Config
		ipCfg      clientip.Config
		cookieCfg  cookie.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&sessionCfg) },
		func() error { return config.Load(&ipCfg) },
		func() error { return config.Load(&cookieCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}

	backend, err := openBackend(ctx, appCfg.SessionBackend, sessionCfg, log)
	if err != nil {
		return err
	}
	defer backend.close()

	resolver := clientip.NewFromConfig(ipCfg)
	sessions := session.NewFromConfig(sessionCfg,
		session.WithStore(backend.store),
		session.WithLocker(backend.locker),
		session.WithResolver(resolver),
		session.WithCookieManager(cookies),
		session.WithLogger(log),
	)
	defer sessions.Close()

	a := &app{
		env:      input.NewEnv(nil),
		prefix:   appCfg.EnvPrefix,
		sessions: sessions,
		resolver: resolver,
		checks:   backend.checks,
		log:      log,
	}

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, a.router())
}
