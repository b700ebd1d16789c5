package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/config"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/graphclient"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/job"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// スケジューラを経由せず単発でジョブを流すための入口。
// 失敗したら非ゼロで終了するので、外部のcronや手動検証から使える。
func main() {
	var name string
	flag.StringVar(&name, "job", "", "job to run: heartbeat | lowstock | reminders | report")
	flag.Parse()

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

	client := graphclient.New(cfg.GraphQLURL, cfg.JobTimeout)

	var j job.Job
	switch name {
	case "heartbeat":
		j = job.NewHeartbeatJob(client, cfg.HeartbeatLogPath)
	case "lowstock":
		j = job.NewLowStockJob(client, cfg.LowStockLogPath)
	case "reminders":
		j = job.NewOrderRemindersJob(client, cfg.RemindersLogPath)
	case "report":
		//キューを介さず集計本体を直接流す
		j = job.NewGenerateReportTask(client, cfg.ReportLogPath)
	default:
		fmt.Fprintln(os.Stderr, "usage: runjob -job heartbeat|lowstock|reminders|report")
		os.Exit(2)
	}

	clock := job.RealClock{}
	if err := j.Run(context.Background(), clock.Now()); err != nil {
		logger.Error("job failed", zap.String("job", j.Name()), zap.Error(err))
		os.Exit(1)
	}
	logger.Info("job completed", zap.String("job", j.Name()))
}
