package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	calcana "github.com/calcana/calcana-go"
	"github.com/calcana/calcana-go/internal/config"
)

// app wires configuration, logging and the API client for one CLI run, and
// re-hydrates the previous session from disk.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *calcana.Client
	session calcana.Session
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	client, err := calcana.NewClient(calcana.Config{
		BaseURL:    cfg.APIURL,
		TokenStore: calcana.NewFileTokenStore(cfg.ConfigDir),
		Telemetry:  calcana.ZapTelemetry(logger),
		NavigateToLogin: func() {
			fmt.Fprintln(os.Stderr, "Sessão encerrada. Use 'calcana login' para entrar novamente.")
		},
	})
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		session: client.Access.Bootstrap(),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// requireRoute gates a command on the route policy. Denial for a logged-in
// user is a redirect to the fallback route, mirroring the web app.
func (a *app) requireRoute(routeID string) error {
	if a.client.Access.IsRouteAllowed(routeID) {
		return nil
	}
	if !a.session.Authenticated {
		return fmt.Errorf("faça login primeiro: calcana login")
	}
	return fmt.Errorf("acesso restrito; use 'calcana %s'", calcana.FallbackRoute())
}

func newLogger(level string) (*zap.Logger, error) {
	parsed := zapcore.WarnLevel
	if err := parsed.Set(strings.ToLower(level)); err != nil {
		parsed = zapcore.WarnLevel
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(parsed),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			LevelKey:   "level",
			TimeKey:    "ts",
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(l.String())
			},
			EncodeTime: zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
