package job

import "time"

// Clockは現在時刻の供給元。テストでは固定時刻を差し込む。
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
