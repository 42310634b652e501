package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/francofil/proyecto-final-algoritmos/api"
	apiplanner "github.com/francofil/proyecto-final-algoritmos/api/planner"
	"github.com/francofil/proyecto-final-algoritmos/config"
	coremetrics "github.com/francofil/proyecto-final-algoritmos/core/metrics"
	"github.com/francofil/proyecto-final-algoritmos/core/planner"
	"github.com/francofil/proyecto-final-algoritmos/infra/logger"
	"github.com/francofil/proyecto-final-algoritmos/infra/metrics"
)

// Service orchestrates the optimization engine and its HTTP surface.
type Service struct {
	Engine      *planner.Engine
	srv         *http.Server
	sink        coremetrics.Sink
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	engine := planner.New(cfg.Planner, logger.New("engine"))

	mux := http.NewServeMux()
	mux.Handle("/optimize", apiplanner.NewOptimizeHandler(engine, sink, logger.New("api")))
	mux.Handle("/healthz", apiplanner.NewHealthHandler())

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      api.CORS(cfg.Server.AllowedOrigins, mux),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	return &Service{
		Engine:      engine,
		srv:         srv,
		sink:        sink,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if closer, ok := s.sink.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}
