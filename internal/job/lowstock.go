package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/graphclient"
)

const lowStockSeparator = "--------------------------------------------------"

// LowStockJobは補充mutationをAPI越しに実行し、結果のブロックをログに追記する。
//
// 補充は冪等ではない。しきい値未満のままなら毎回加算される（意図した挙動）。
// mutation側がsuccess=falseを返してもジョブとしては成功扱いで、失敗はログに残る。
type LowStockJob struct {
	client  *graphclient.Client
	logPath string
}

func NewLowStockJob(client *graphclient.Client, logPath string) *LowStockJob {
	return &LowStockJob{client: client, logPath: logPath}
}

func (j *LowStockJob) Name() string {
	return "low_stock_update"
}

func (j *LowStockJob) Run(ctx context.Context, now time.Time) error {
	ts := now.Format("2006-01-02 15:04:05")

	var data struct {
		UpdateLowStockProducts struct {
			Success         bool   `json:"success"`
			Message         string `json:"message"`
			UpdatedCount    int64  `json:"updatedCount"`
			UpdatedProducts []struct {
				ID    string `json:"id"`
				Name  string `json:"name"`
				Stock int64  `json:"stock"`
			} `json:"updatedProducts"`
		} `json:"updateLowStockProducts"`
	}

	query := `mutation {
		updateLowStockProducts {
			success
			message
			updatedCount
			updatedProducts {
				id
				name
				stock
			}
		}
	}`

	if err := j.client.Execute(ctx, query, nil, &data); err != nil {
		line := fmt.Sprintf("[%s] ERROR executing GraphQL mutation: %s\n", ts, err)
		if werr := appendLog(j.logPath, line); werr != nil {
			return werr
		}
		return err
	}

	res := data.UpdateLowStockProducts

	// ブロック単位で1回のwriteにまとめる
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", ts, res.Message)
	for _, p := range res.UpdatedProducts {
		fmt.Fprintf(&b, "- %s (ID: %s): stock %d\n", p.Name, p.ID, p.Stock)
	}
	b.WriteString(lowStockSeparator + "\n")

	return appendLog(j.logPath, b.String())
}
