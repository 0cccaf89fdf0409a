package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"theme-sync/core/loader"
	"theme-sync/core/logger"
	"theme-sync/core/middleware/auth"
	"theme-sync/core/middleware/rayid"
	"theme-sync/core/reconcile"
	"theme-sync/core/scheduler"
	"theme-sync/core/server"

	"theme-sync/feature/credential"
	"theme-sync/feature/integrity"
	"theme-sync/feature/integrity/checks"
	"theme-sync/feature/schedule"
	"theme-sync/feature/style"
	"theme-sync/feature/theme"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "theme-sync/docs/swagger"
)

// Version is reported by the service banner.
const Version = "1.0.0"

// @title Theme Sync API
// @version 1.0
// @description API for synchronising PLM themes, colorways and styles with IDM attributes.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the theme sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and upstream clients
		comps, err := loadComponents()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		cfg, logg := comps.cfg, comps.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if cfg.ION.TenantID == "" || cfg.Auth.ClientID == "" {
			logg.Warn("ION tenant or OAuth client not configured; upstream calls will fail")
		}

		// 2. Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 3. Feature Loader
		ctx, stop := context.WithCancel(context.Background())
		defer stop()

		mgr := loader.NewManager(logg)
		themeFeature := theme.NewFeature(comps.plm, comps.mapper, cfg.PLM.ThemeConcurrency, logg.Named("theme"))
		mgr.Register(themeFeature)
		mgr.Register(style.NewFeature(comps.plm, comps.mapper, logg.Named("style")))
		mgr.Register(credential.NewFeature(comps.tokens, logg.Named("credential")))
		mgr.Register(integrity.NewFeature(logg.Named("integrity"),
			checks.Credential(comps.tokens),
			checks.PLM(comps.plm),
			checks.IDM(comps.idm, cfg.IDM.ProbeEntity),
		))

		var sched *scheduler.Scheduler
		if cfg.Schedule.Enabled() {
			ids, err := cfg.Schedule.ThemeIDList()
			if err != nil {
				logg.Fatal("Invalid scheduled theme ids", zap.Error(err))
			}
			job := schedule.ThemeSyncJob(themeFeature.Service(), ids, reconcile.Options{DryRun: cfg.Schedule.DryRun}, logg.Named("schedule"))
			sched, err = scheduler.New(cfg.Schedule.Cron, job, logg.Named("schedule"))
			if err != nil {
				logg.Fatal("Invalid sync schedule", zap.Error(err))
			}
			sched.Start(ctx)
			logg.Info("Theme sync scheduled", zap.String("cron", cfg.Schedule.Cron), zap.Ints("theme_ids", ids))
		}
		mgr.Register(schedule.NewFeature(sched, logg.Named("schedule")))

		// 4. Middleware: RayID first so every log line carries it
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", c.IP()),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request completed", fields...)
			return nil
		})

		// 5. Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/", server.Banner("Theme Sync API", Version, []server.Endpoint{
			{Method: "GET", Path: "/api/theme/health", Description: "Health check"},
			{Method: "POST", Path: "/api/theme", Description: "Theme colorways grouped by style"},
			{Method: "POST", Path: "/api/themes", Description: "Several themes at once"},
			{Method: "POST", Path: "/api/theme/attributes", Description: "Theme with mapped IDM attributes"},
			{Method: "GET", Path: "/api/theme/attributes/:pid/formatted", Description: "Flat attribute export"},
			{Method: "POST", Path: "/api/theme/update", Description: "Write theme attributes and reconcile styles"},
			{Method: "POST", Path: "/api/style/update", Description: "Write attributes onto one style and reconcile it"},
			{Method: "GET", Path: "/api/token", Description: "Cached credential state"},
			{Method: "POST", Path: "/api/token/revoke", Description: "Revoke the cached credential"},
			{Method: "GET", Path: "/api/integrity", Description: "Upstream integrity checks"},
			{Method: "GET", Path: "/api/schedule", Description: "Scheduled sync status"},
		}))

		// 6. Auth
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key not configured; API is unprotected")
		}
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Public: []string{"/", "/api/theme/health", "/swagger"},
		}))

		// 7. Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stop()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
