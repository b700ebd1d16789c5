package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const taskQueueKey = "crm:tasks"

// キューが空
var ErrEmpty = errors.New("queue empty")

// Taskはキューに積む仕事の封筒。ペイロードは持たず、Nameで仕分ける。
type Task struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

type RedisQueue struct {
	client *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

// Enqueueはタスクを末尾に積む。
func (q *RedisQueue) Enqueue(ctx context.Context, name string) (Task, error) {
	t := Task{
		ID:         uuid.NewString(),
		Name:       name,
		EnqueuedAt: time.Now(),
	}

	b, err := json.Marshal(t)
	if err != nil {
		return Task{}, err
	}

	if err := q.client.LPush(ctx, taskQueueKey, b).Err(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Dequeueは次のタスクをブロッキングで取り出す。
// timeoutまで待っても無ければErrEmptyを返す。
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (Task, error) {
	res, err := q.client.BRPop(ctx, timeout, taskQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return Task{}, ErrEmpty
	}
	if err != nil {
		return Task{}, err
	}

	// res[0]はキー名、res[1]が本体
	var t Task
	if err := json.Unmarshal([]byte(res[1]), &t); err != nil {
		return Task{}, err
	}
	return t, nil
}
