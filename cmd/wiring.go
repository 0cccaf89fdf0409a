package cmd

import (
	"fmt"
	"time"

	"theme-sync/core/config"
	"theme-sync/core/idm"
	"theme-sync/core/ion"
	"theme-sync/core/logger"
	"theme-sync/core/plm"
	"theme-sync/core/token"

	"go.uber.org/zap"
)

// components are the upstream clients shared by the server and the CLI commands.
type components struct {
	cfg    *config.Config
	logger *zap.Logger
	tokens *token.Cache
	plm    *plm.Client
	idm    *idm.Client
	mapper *idm.Mapper
}

// loadComponents reads configuration and builds every upstream client.
func loadComponents() (*components, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return newComponents(cfg, l), nil
}

func newComponents(cfg *config.Config, l *zap.Logger) *components {
	httpClient := ion.NewHTTPClient(cfg.ION)
	tokens := token.NewCache(cfg.Auth, httpClient, l.Named("token"))
	transport := ion.NewClient(cfg.ION, httpClient, tokens, l.Named("ion"))

	ttl := time.Duration(cfg.IDM.ValueListTTLSeconds) * time.Second
	idmClient := idm.NewClient(transport, l.Named("idm"))

	return &components{
		cfg:    cfg,
		logger: l,
		tokens: tokens,
		plm:    plm.NewClient(transport, cfg.PLM, l.Named("plm")),
		idm:    idmClient,
		mapper: idm.NewMapper(idmClient, ttl, l.Named("idm")),
	}
}
