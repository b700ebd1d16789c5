package job

import (
	"context"
	"errors"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/infra/queue"

	"go.uber.org/zap"
)

// Workerはタスクキューを読み続け、名前で仕分けて実行する。
// タスクの失敗はログに出すだけで、ワーカー自体は止めない。
type Worker struct {
	queue  *queue.RedisQueue
	report *GenerateReportTask
	clock  Clock
	logger *zap.Logger
}

func NewWorker(q *queue.RedisQueue, report *GenerateReportTask, clock Clock, logger *zap.Logger) *Worker {
	return &Worker{
		queue:  q,
		report: report,
		clock:  clock,
		logger: logger,
	}
}

// Runはctxが閉じるまでブロックする。goroutineで起動する想定。
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		task, err := w.queue.Dequeue(ctx, 5*time.Second)
		if errors.Is(err, queue.ErrEmpty) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Error("dequeue failed", zap.Error(err))
			//Redis断のときに空回りしない
			time.Sleep(time.Second)
			continue
		}

		w.logger.Info("task received",
			zap.String("task", task.Name),
			zap.String("task_id", task.ID),
		)

		switch task.Name {
		case TaskGenerateCRMReport:
			if err := w.report.Run(ctx, w.clock.Now()); err != nil {
				w.logger.Error("task failed", zap.String("task", task.Name), zap.Error(err))
			}
		default:
			w.logger.Warn("unknown task", zap.String("task", task.Name))
		}
	}
}
