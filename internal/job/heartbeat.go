package job

import (
	"context"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/graphclient"
)

// HeartbeatJobは生存確認の1行をログに追記する。
// ついでにGraphQLエンドポイントへhelloを投げ、疎通結果を同じ行に載せる。
// 疎通失敗は行内に記録するだけで、ジョブ自体は失敗にしない。
type HeartbeatJob struct {
	client  *graphclient.Client
	logPath string
}

func NewHeartbeatJob(client *graphclient.Client, logPath string) *HeartbeatJob {
	return &HeartbeatJob{client: client, logPath: logPath}
}

func (j *HeartbeatJob) Name() string {
	return "heartbeat"
}

func (j *HeartbeatJob) Run(ctx context.Context, now time.Time) error {
	message := now.Format("02/01/2006-15:04:05") + " CRM is alive"

	var data struct {
		Hello string `json:"hello"`
	}
	err := j.client.Execute(ctx, `query { hello }`, nil, &data)
	switch {
	case err != nil:
		message += " | GraphQL Error: " + truncate(err.Error(), 100)
	case data.Hello != "":
		message += " | GraphQL: " + data.Hello
	default:
		message += " | GraphQL: No response"
	}

	return appendLog(j.logPath, message+"\n")
}
