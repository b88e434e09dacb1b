package main

import (
	"context"
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ha-entity-engine/internal/adapters/output/homeassistant"
	"ha-entity-engine/internal/adapters/output/persistence"
	"ha-entity-engine/internal/config"
	"ha-entity-engine/internal/domain/display"
	"ha-entity-engine/internal/domain/service"
	"ha-entity-engine/internal/logging"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "ha-engine",
	Short: "Home Assistant entity semantics and action dispatch",
	Long: `ha-engine derives display strings, icons, colors and active state for
Home Assistant entities and turns toggle, select and value intents into
service calls.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (env: CONFIG_FILE)")
}

func main() {
	rootCmd.Version = versioninfo.Short()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds everything a command needs once config is loaded.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	client *homeassistant.Client
	engine *service.Engine
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireHass(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	logger.Debug("using config", zap.Any("config", cfg.Redacted()))

	catalog := service.NewCatalog(persistence.NewFileCatalogRepository(cfg.CatalogPath))
	if err := catalog.Load(ctx, cfg.Display.Language); err != nil {
		logger.Warn("catalog not loaded, falling back to raw states",
			zap.String("language", cfg.Display.Language), zap.Error(err))
	}

	client := homeassistant.NewClient(logger.Named("homeassistant"), cfg.CacheTTL())
	client.Configure(cfg.Hass.URL, cfg.Hass.Token)

	formatter := display.NewFormatter(catalog, cfg.Locale(), display.Options{Legacy: cfg.Display.LegacyStateCatalog})
	engine := service.NewEngine(client, client, formatter,
		service.WithLogger(logger.Named("engine")),
		service.WithOverrides(cfg.OverrideMap()),
		service.WithRevertAfter(cfg.RevertAfter()),
	)

	return &app{cfg: cfg, logger: logger, client: client, engine: engine}, nil
}

func (a *app) Close() {
	a.engine.Close()
	a.client.Close()
	_ = a.logger.Sync()
}
