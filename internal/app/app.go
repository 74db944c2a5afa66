package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/seller-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/seller-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/seller-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/seller-backend/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/seller-backend/internal/repository/minio"
	"github.com/DRSN-tech/seller-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/seller-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/seller-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/seller-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/seller-backend/internal/usecase"
	"github.com/DRSN-tech/seller-backend/pkg/clients"
	"github.com/DRSN-tech/seller-backend/pkg/closer"
	"github.com/DRSN-tech/seller-backend/pkg/e"
	"github.com/DRSN-tech/seller-backend/pkg/logger"
	"github.com/DRSN-tech/seller-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	productConv := pgdbConv.NewProductConverterImpl()
	categoryConv := pgdbConv.NewCategoryConverterImpl()
	tagConv := pgdbConv.NewTagConverterImpl()
	saleConv := pgdbConv.NewSaleConverterImpl()
	refundConv := pgdbConv.NewRefundConverterImpl()
	disputeConv := pgdbConv.NewDisputeConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	saleCacheConv := redisConv.NewSaleConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, categoryConv)
	tagRepo := pgdb.NewTagRepo(db.Pool, tagConv)
	mappingRepo := pgdb.NewMappingRepo(db.Pool)
	saleRepo := pgdb.NewSaleRepo(db.Pool, saleConv)
	refundRepo := pgdb.NewRefundRepo(db.Pool, refundConv)
	disputeRepo := pgdb.NewDisputeRepo(db.Pool, disputeConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	// Контекст живёт дольше запросов: фоновая компенсация MinIO
	// должна переживать отмену запроса и останавливаться только на shutdown.
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, cleanupCtx)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, saleCacheConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}

	refundUC := usecase.NewRefundUC(refundRepo, saleRepo, outboxRepo, cacheRepo, db.Pool, logger)
	disputeUC := usecase.NewDisputeUC(disputeRepo, saleRepo, outboxRepo, cacheRepo, db.Pool, logger)
	assignmentUC := usecase.NewAssignmentUC(productRepo, mappingRepo, logger)
	productUC := usecase.NewProductUC(productRepo, imagesInfra, db.Pool, logger)
	taxonomyUC := usecase.NewTaxonomyUC(categoryRepo, tagRepo, db.Pool, logger)
	saleUC := usecase.NewSaleUC(saleRepo, cacheRepo, logger)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	worker.Start(workerCtx)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(refundUC, disputeUC, assignmentUC, productUC, taxonomyUC, saleUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// Закрытие ресурсов в порядке LIFO: сперва перестаём принимать запросы,
	// потом гасим worker и producer, затем хранилища.
	c := closer.NewCloser(2 * time.Second)
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	c.Add(func(ctx context.Context) error {
		cleanupCancel()
		return nil
	})
	c.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})
	c.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})
	c.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := c.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
