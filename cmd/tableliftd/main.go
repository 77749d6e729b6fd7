package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/tablelift/tablelift/gen/proto/tablelift/v1"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/export"
	"github.com/tablelift/tablelift/internal/extract"
	"github.com/tablelift/tablelift/internal/ingest"
	"github.com/tablelift/tablelift/internal/ops"
	"github.com/tablelift/tablelift/internal/progress"
	"github.com/tablelift/tablelift/internal/repository"
	"github.com/tablelift/tablelift/internal/runs"
	"github.com/tablelift/tablelift/internal/scheduler"
	"github.com/tablelift/tablelift/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database healthy")

	jobRepo := repository.NewJobRepository(entc, logger)
	runRepo := repository.NewRunRepository(entc, logger)
	fileRepo := repository.NewFileRepository(entc, logger)
	taskRepo := repository.NewTaskRepository(entc, logger)
	opRepo := repository.NewOperationRepository(entc, logger)
	exportRepo := repository.NewExportRepository(entc, logger)

	opStore := ops.NewStore(opRepo, logger)
	broadcaster := progress.NewBroadcaster(logger, cfg.Workers.QueueSize)
	defer broadcaster.Close()

	queue := async.NewWorkQueue(logger,
		async.WithWorkers(cfg.Workers.PoolSize),
		async.WithQueueSize(cfg.Workers.QueueSize),
		async.WithJobTimeout(cfg.Workers.TaskTimeout),
	)

	runSvc := runs.NewService(jobRepo, runRepo, taskRepo, opStore, broadcaster, logger)

	headers := map[string]string{}
	if cfg.Extractor.APIKey != "" {
		headers["Authorization"] = "Bearer " + cfg.Extractor.APIKey
	}
	extractor := extract.NewHTTPExtractor(cfg.Extractor.URL, headers, cfg.Extractor.Timeout, logger)
	sched := scheduler.New(runRepo, fileRepo, taskRepo, extractor, queue, broadcaster, runSvc, logger)
	runSvc.SetScheduler(sched)

	ingestCoord := ingest.NewCoordinator(runRepo, fileRepo, opStore, queue, broadcaster, cfg.Storage.UploadDir, logger)
	exportCoord := export.NewCoordinator(runRepo, taskRepo, exportRepo, opStore, queue, cfg.Storage.ExportDir, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterJobServiceServer(grpcServer, server.NewJobService(runSvc, logger))
	v1.RegisterIngestionServiceServer(grpcServer, server.NewIngestionService(ingestCoord, logger))
	v1.RegisterProgressServiceServer(grpcServer, server.NewProgressService(broadcaster, logger))
	v1.RegisterOperationServiceServer(grpcServer, server.NewOperationService(opStore, logger))
	v1.RegisterExportServiceServer(grpcServer, server.NewExportService(exportCoord, opStore, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)
	logger.Info("stopped")
}
