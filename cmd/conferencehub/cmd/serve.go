package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"conferencehub/config"
	delivery "conferencehub/internal/delivery/http"
	"conferencehub/internal/delivery/http/controllers"
	"conferencehub/internal/metrics"
	"conferencehub/internal/repository/postgres"
	"conferencehub/internal/services"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	host string
	port int
}

func newServeCmd(global *globalFlags) *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables
- Apply pending migrations when AUTO_MIGRATE=true
- Serve the API, /health, /metrics and /swagger/
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  conferencehub serve
  conferencehub serve --host 127.0.0.1 --port 9090 --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), global, flags)
		},
	}
	cmd.Flags().StringVar(&flags.host, "host", "", "server host address (default: all interfaces)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "server port (default: PORT or 8080)")
	return cmd
}

// loadConfig reads the environment and applies the global flag overrides.
func loadConfig(global *globalFlags) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config error: %w", err)
	}
	if global.logLevel != "" {
		cfg.LogLevel = global.logLevel
	}
	return cfg, config.NewLogger(cfg.Environment, cfg.LogLevel), nil
}

func runServer(ctx context.Context, global *globalFlags, flags *serveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, logger, err := loadConfig(global)
	if err != nil {
		return err
	}
	if flags.port != 0 {
		cfg.Port = fmt.Sprint(flags.port)
	}
	logger.Info("starting conferencehub", "version", Version, "env", cfg.Environment)
	metrics.Init(Version)

	if cfg.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DBUrl); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := postgres.Open(openCtx, cfg.DBUrl, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	cancel()
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()
	if err := metrics.RegisterDB(db, "conferencehub"); err != nil {
		logger.Warn("database metrics not registered", "err", err)
	}

	conferenceRepo := postgres.NewConferenceRepository(db)
	talkRepo := postgres.NewTalkRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)

	timeout := cfg.RequestTimeout
	router := delivery.NewRouter(logger, delivery.Controllers{
		Conference:  controllers.NewConferenceController(logger, services.NewConferenceService(conferenceRepo, timeout)),
		Talk:        controllers.NewTalkController(logger, services.NewTalkService(talkRepo, conferenceRepo, timeout)),
		Speaker:     controllers.NewSpeakerController(logger, services.NewSpeakerService(speakerRepo, talkRepo, timeout)),
		Participant: controllers.NewParticipantController(logger, services.NewParticipantService(participantRepo, talkRepo, timeout)),
		Health:      controllers.NewHealthController(logger, db),
	}, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.Addr(flags.host),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	stopCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-stopCtx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
