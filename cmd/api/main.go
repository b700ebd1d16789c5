package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/config"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/graph"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/graphclient"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/handler"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/infra/db"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/infra/queue"
	infraRepo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/infra/repository"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/job"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/server"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（環境変数だけでも起動できる）
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Order{},
		&model.StockAdjustment{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Redis接続（週次レポートのタスクキュー）
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable at startup", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	customerUC := usecase.NewCustomerUsecase(customerRepo, txManager)
	productUC := usecase.NewProductUsecase(productRepo, txManager)
	orderUC := usecase.NewOrderUsecase(orderRepo, txManager)

	//GraphQLスキーマ組み立て
	schema, err := graph.NewSchema(graph.NewResolver(customerUC, productUC, orderUC))
	if err != nil {
		logger.Fatal("schema build failed", zap.Error(err))
	}

	//Handler生成
	gh := handler.NewGraphQLHandler(schema)
	e := server.New(gh, logger)

	//ジョブまわりの部品
	clock := job.RealClock{}
	gqlClient := graphclient.New(cfg.GraphQLURL, cfg.JobTimeout)
	taskQueue := queue.NewRedisQueue(rdb)

	sched := job.NewScheduler(clock, logger)
	entries := []struct {
		spec string
		j    job.Job
	}{
		{cfg.HeartbeatCron, job.NewHeartbeatJob(gqlClient, cfg.HeartbeatLogPath)},
		{cfg.LowStockCron, job.NewLowStockJob(gqlClient, cfg.LowStockLogPath)},
		{cfg.RemindersCron, job.NewOrderRemindersJob(gqlClient, cfg.RemindersLogPath)},
		{cfg.ReportCron, job.NewWeeklyReportJob(taskQueue)},
	}
	for _, entry := range entries {
		if err := sched.Register(entry.spec, entry.j); err != nil {
			logger.Fatal("cron registration failed",
				zap.String("job", entry.j.Name()),
				zap.String("spec", entry.spec),
				zap.Error(err))
		}
	}
	sched.Start()

	//週次レポートを処理するワーカー（集計は他のジョブと同じくAPI越し）
	reportTask := job.NewGenerateReportTask(gqlClient, cfg.ReportLogPath)
	worker := job.NewWorker(taskQueue, reportTask, clock, logger)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Run(ctx)
	}()

	//Server起動
	addr := ":" + cfg.Port
	if cfg.Port != "" && cfg.Port[0] == ':' {
		addr = cfg.Port
	}
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	//実行中のジョブが終わるまで待つ
	<-sched.Stop().Done()
	<-workerDone

	if err := rdb.Close(); err != nil {
		logger.Error("redis close failed", zap.Error(err))
	}
	logger.Info("stopped")
}
