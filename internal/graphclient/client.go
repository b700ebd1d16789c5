package graphclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ClientはスケジュールジョブからGraphQL APIを叩く薄いHTTPクライアント。
// リトライはしない。失敗は呼び出し側（ジョブ）がログして飲み込む。
type Client struct {
	url  string
	http *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// ログに出す用
func (c *Client) URL() string {
	return c.url
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Executeはクエリを送り、レスポンスのdataをoutへデコードする。
// GraphQLレベルのエラーもerrorとして返す。
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql endpoint returned status %d", res.StatusCode)
	}

	var decoded response
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return err
	}

	if len(decoded.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", decoded.Errors[0].Message)
	}

	if out != nil && decoded.Data != nil {
		return json.Unmarshal(decoded.Data, out)
	}
	return nil
}
