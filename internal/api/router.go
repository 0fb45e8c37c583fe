package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retirement-calc/internal/api/handlers"
	"retirement-calc/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr           string
	ScenarioDir    string
	AllowedOrigins []string
	// ShutdownTimeout bounds how long in-flight requests may run after a
	// shutdown signal. Zero means 10s.
	ShutdownTimeout time.Duration
}

// NewRouter wires middleware and every route onto a fresh gin engine.
func NewRouter(logger zerolog.Logger, cfg Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Logger(&logger))
	router.Use(middleware.ErrorHandler())

	withdrawalHandler := handlers.NewWithdrawalHandler()
	growthHandler := handlers.NewGrowthHandler()
	durationHandler := handlers.NewDurationHandler()
	calculatorHandler := handlers.NewCalculatorHandler()
	scenarioHandler := handlers.NewScenarioHandler(cfg.ScenarioDir)

	logger.Info().Str("dir", scenarioHandler.ScenarioDir()).Msg("serving scenario presets")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/calculators", calculatorHandler.ListCalculators)

		api.POST("/withdrawal", withdrawalHandler.Solve)
		api.POST("/withdrawal/report", withdrawalHandler.Report)
		api.POST("/withdrawal/sensitivity", withdrawalHandler.Sensitivity)

		api.POST("/growth/fixed", growthHandler.Fixed)
		api.POST("/growth/variable", growthHandler.Variable)

		api.POST("/duration", durationHandler.Simulate)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.POST("/scenarios/:id/run", scenarioHandler.RunScenario)
	}

	return router
}

// Server runs the router until the process receives SIGINT or SIGTERM.
type Server struct {
	logger *zerolog.Logger
	server *http.Server
	cfg    Config
}

func NewServer(logger zerolog.Logger, cfg Config) *Server {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Server{
		logger: &logger,
		cfg:    cfg,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: NewRouter(logger, cfg),
		},
	}
}

func (s *Server) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("starting server")
		serverErrors <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
		s.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.server.Close()
			return err
		}
		s.logger.Info().Msg("shutdown complete")
		return nil
	}
}
