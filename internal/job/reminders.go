package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/graphclient"
)

// 何日前までの注文をリマインド対象にするか
const reminderDaysBack = 7

// OrderRemindersJobは直近のPENDING注文を問い合わせ、1件ずつリマインド行を追記する。
type OrderRemindersJob struct {
	client  *graphclient.Client
	logPath string
}

func NewOrderRemindersJob(client *graphclient.Client, logPath string) *OrderRemindersJob {
	return &OrderRemindersJob{client: client, logPath: logPath}
}

func (j *OrderRemindersJob) Name() string {
	return "order_reminders"
}

func (j *OrderRemindersJob) Run(ctx context.Context, now time.Time) error {
	ts := now.Format("2006-01-02 15:04:05")
	write := func(msg string) error {
		return appendLog(j.logPath, fmt.Sprintf("[%s] %s\n", ts, msg))
	}

	if err := write("Starting order reminder processing..."); err != nil {
		return err
	}
	if err := write("Querying GraphQL endpoint: " + j.client.URL()); err != nil {
		return err
	}
	if err := write(fmt.Sprintf("Looking for orders from last %d days", reminderDaysBack)); err != nil {
		return err
	}

	var data struct {
		Orders []struct {
			ID        string `json:"id"`
			OrderDate string `json:"orderDate"`
			Customer  struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"orders"`
	}

	query := `query GetRecentOrders($filter: OrderFilterInput) {
		orders(filter: $filter) {
			id
			orderDate
			customer {
				email
			}
		}
	}`

	since := now.AddDate(0, 0, -reminderDaysBack)
	variables := map[string]interface{}{
		"filter": map[string]interface{}{
			"orderDateGte": since.Format(time.RFC3339),
			"status":       "PENDING",
		},
	}

	if err := j.client.Execute(ctx, query, variables, &data); err != nil {
		_ = write("ERROR: Failed to process order reminders: " + err.Error())
		return err
	}

	if len(data.Orders) == 0 {
		if err := write("No recent pending orders found"); err != nil {
			return err
		}
	} else {
		if err := write(fmt.Sprintf("Found %d recent pending orders", len(data.Orders))); err != nil {
			return err
		}
		for _, o := range data.Orders {
			line := fmt.Sprintf("Order ID: %s, Customer Email: %s, Order Date: %s",
				o.ID, o.Customer.Email, o.OrderDate)
			if err := write(line); err != nil {
				return err
			}
		}
	}

	if err := write("Order reminders processed!"); err != nil {
		return err
	}

	// ブロックの区切り
	return appendLog(j.logPath, strings.Repeat("=", 50)+"\n")
}
