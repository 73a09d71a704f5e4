package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"goban/internal/adapters"
	"goban/internal/bootstrap"
	gameDelivery "goban/internal/delivery/game"
	ownMiddleware "goban/internal/middleware"
	repo "goban/internal/repository"
	gameuc "goban/internal/usecase/game"
)

const serviceName = "goban.Records"

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfgPath := ".env"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := bootstrap.Setup(cfgPath)
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, *cfg)
	defer databaseAdapters.mongoAdapter.Close(context.Background())
	defer databaseAdapters.redisAdapter.Close(context.Background())

	healthServer := health.NewServer()
	grpcServer := startGrpc(logger, *cfg, healthServer)
	defer grpcServer.GracefulStop()

	gameRepo := repo.NewGameRepository(*cfg, logger, databaseAdapters.redisAdapter.GetClient(), databaseAdapters.mongoAdapter.Database)
	gameUseCase := gameuc.NewGameUseCase(gameRepo, logger)
	gameHandler := gameDelivery.NewGameHandler(*cfg, logger, gameUseCase)

	if cfg.ImportDir != "" {
		report, err := gameUseCase.ImportDirectory(ctx, cfg.ImportDir)
		if err != nil {
			logger.Error("Failed to import records", zap.Error(err))
		}
		logger.Infof("Imported %d records from %s, rejected %d", len(report.Imported), cfg.ImportDir, len(report.Rejected))
	}

	r := chi.NewRouter()
	if cfg.IsLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	gameHandler.Routes(r)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = server.Shutdown(shutdownCtx)
	}()

	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(&cfg, log)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(&cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	log.Info("Database adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}

func startGrpc(log *zap.SugaredLogger, cfg bootstrap.Config, healthServer *health.Server) *grpc.Server {
	lis, err := net.Listen("tcp", ":"+cfg.GrpcPort)
	if err != nil {
		log.Fatal("cant listen grpc port", zap.Error(err))
	}

	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	go func() {
		log.Infof("grpc health server at :%s", cfg.GrpcPort)
		if err := server.Serve(lis); err != nil {
			log.Error("grpc server stopped", zap.Error(err))
		}
	}()
	return server
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
