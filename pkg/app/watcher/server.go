// Package watcher implements app.Runner for the swap fee watcher process.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/swap-fee-watcher/pkg/app/http"
	"github.com/chainsafe/swap-fee-watcher/pkg/config"
	"github.com/chainsafe/swap-fee-watcher/pkg/ethereum"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee/service"
	"github.com/chainsafe/swap-fee-watcher/pkg/feestore"
	"github.com/chainsafe/swap-fee-watcher/pkg/oracle"
	"github.com/chainsafe/swap-fee-watcher/pkg/pgutil"
	"github.com/chainsafe/swap-fee-watcher/pkg/queue"
	"github.com/chainsafe/swap-fee-watcher/pkg/watcher"
)

// Version is reported by GET /
const Version = "0.0.1"

// Server holds configuration for the watcher process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new watcher Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run starts the persistence consumer, the swap subscriber and the query API.
// It blocks until an OS shutdown signal is received or a fatal error occurs,
// then stops HTTP, the subscriber and finally drains the queue.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting swap fee watcher", zap.String("version", Version))

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect fee db: %w", err)
	}
	defer func() { _ = db.Close() }()
	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping fee db: %w", err)
	}
	logger.Info("Database connection established")

	ethClient, err := ethereum.NewClient(&cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("initialize ethereum client: %w", err)
	}
	defer ethClient.Close()

	store := feestore.NewStore(db)
	q := queue.New(store, cfg.Queue, logger)

	resolver := ethereum.NewReceiptResolver(ethClient, cfg.Ethereum.ReceiptRetry, logger)
	priceOracle := oracle.NewClient(&cfg.Oracle, nil, logger)
	calc := service.NewCalculator(
		resolver,
		ethClient,
		priceOracle,
		cfg.Oracle.Symbol,
		ethClient.PoolAddress(),
		ethClient.SwapTopic(),
		logger,
	)

	// producers are taken before the consumer starts so it cannot see zero
	queryProducer := q.Producer()
	defer queryProducer.Close()

	cache, err := service.NewCache(store, calc, queryProducer, cfg.Cache, logger)
	if err != nil {
		return fmt.Errorf("initialize fee cache: %w", err)
	}
	feeService := service.NewLog(service.NewService(cache, calc, cfg.Server.BatchConcurrency, logger), logger)

	var (
		subscriber *watcher.Subscriber
		subDone    = make(chan error, 1)
	)
	subCtx, cancelSub := context.WithCancel(ctx)
	defer cancelSub()

	if cfg.Subscriber.Enabled {
		subProducer := q.Producer()
		subscriber = watcher.NewSubscriber(ethClient, ethClient.SwapFilter(), calc, subProducer, cfg.Subscriber, logger)
		go func() {
			defer subProducer.Close()
			err := subscriber.Run(subCtx)
			if err != nil {
				logger.Error("Swap subscriber stopped", zap.Error(err))
				stop()
			}
			subDone <- err
		}()
	} else {
		logger.Info("Swap subscriber disabled")
		subDone <- nil
	}

	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		// the consumer stops once every producer is closed
		q.Run(context.Background())
	}()

	ready := func() bool { return subscriber == nil || subscriber.Ready() }
	router := newRouter(feeService, ready, cfg, logger)

	serveErr := apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	cancelSub()
	subErr := <-subDone
	queryProducer.Close()

	logger.Info("Draining persistence queue", zap.Int("backlog", q.Len()))
	<-consumerDone
	logger.Info("Swap fee watcher stopped")

	return errors.Join(serveErr, subErr)
}

func newRouter(feeService service.Service, ready func() bool, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("v" + Version))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	service.RegisterRoutes(r, feeService, cfg.Server.MaxBatchSize, logger)

	return r
}
