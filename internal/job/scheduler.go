package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Jobは1回分の実行。nowを受けて、ログファイルへの副作用だけを起こす。
// 失敗してもスケジューラを落とさない。エラーは自分のログに書いたうえで返す。
type Job interface {
	Name() string
	Run(ctx context.Context, now time.Time) error
}

// Schedulerは(cron式, ジョブ)の組を時刻どおりに起動する。
// ジョブ同士は独立で、実行が重なっても互いに待たない。
type Scheduler struct {
	cron   *cron.Cron
	clock  Clock
	logger *zap.Logger
}

func NewScheduler(clock Clock, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		clock:  clock,
		logger: logger,
	}
}

// Registerはcron式でジョブを登録する。式が不正ならエラー。
func (s *Scheduler) Register(spec string, j Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		now := s.clock.Now()
		if err := j.Run(context.Background(), now); err != nil {
			s.logger.Error("job failed", zap.String("job", j.Name()), zap.Error(err))
			return
		}
		s.logger.Info("job completed", zap.String("job", j.Name()))
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stopは新規起動を止める。実行中のジョブの完了はcontextで待てる。
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
