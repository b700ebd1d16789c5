package job

import (
	"context"
	"fmt"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/graphclient"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/infra/queue"

	"github.com/shopspring/decimal"
)

// ワーカーが解釈するタスク名
const TaskGenerateCRMReport = "generate_crm_report"

// WeeklyReportJobはレポート生成タスクをキューに積むだけ。
// 集計本体はワーカー側のGenerateReportTaskで走る。
type WeeklyReportJob struct {
	queue *queue.RedisQueue
}

func NewWeeklyReportJob(q *queue.RedisQueue) *WeeklyReportJob {
	return &WeeklyReportJob{queue: q}
}

func (j *WeeklyReportJob) Name() string {
	return "weekly_report_enqueue"
}

func (j *WeeklyReportJob) Run(ctx context.Context, now time.Time) error {
	_, err := j.queue.Enqueue(ctx, TaskGenerateCRMReport)
	return err
}

// GenerateReportTaskは顧客数・注文数・売上をAPI越しに集計して1行追記する。
// 他のジョブと同じくDBには触らない。集計に失敗したらエラー行を追記する。
type GenerateReportTask struct {
	client  *graphclient.Client
	logPath string
}

func NewGenerateReportTask(client *graphclient.Client, logPath string) *GenerateReportTask {
	return &GenerateReportTask{client: client, logPath: logPath}
}

func (t *GenerateReportTask) Name() string {
	return TaskGenerateCRMReport
}

func (t *GenerateReportTask) Run(ctx context.Context, now time.Time) error {
	ts := now.Format("2006-01-02 15:04:05")

	var data struct {
		Customers []struct {
			ID string `json:"id"`
		} `json:"customers"`
		Orders []struct {
			ID          string `json:"id"`
			TotalAmount string `json:"totalAmount"`
		} `json:"orders"`
	}

	query := `query GetCRMStats {
		customers {
			id
		}
		orders {
			id
			totalAmount
		}
	}`

	if err := t.client.Execute(ctx, query, nil, &data); err != nil {
		line := fmt.Sprintf("%s - ERROR generating CRM report: %s\n", ts, err)
		if werr := appendLog(t.logPath, line); werr != nil {
			return werr
		}
		return err
	}

	// 売上は各注文のtotalAmountの合算。読めない値は飛ばす。
	revenue := decimal.Zero
	for _, o := range data.Orders {
		amount, err := decimal.NewFromString(o.TotalAmount)
		if err != nil {
			continue
		}
		revenue = revenue.Add(amount)
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue\n",
		ts, len(data.Customers), len(data.Orders), revenue.StringFixed(2))
	return appendLog(t.logPath, line)
}
