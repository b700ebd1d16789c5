package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c := &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	// APIが起動していなければスキップ（ローカルで単体テストだけ回すときに壊れないように）
	resp, err := c.HTTP.Get(c.BaseURL + "/healthz")
	if err != nil {
		t.Skipf("API server not available: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Skipf("API server not healthy: status=%d", resp.StatusCode)
	}

	return c
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// /graphqlにクエリをPOSTしてレスポンス全体を返す。
// HTTPレベルの失敗はここでFatalにする。実行エラーはErrorsに入ったまま返す。
func (c *TestClient) doGraphQL(
	ctx context.Context,
	t *testing.T,
	query string,
	variables map[string]interface{},
) graphQLResponse {
	t.Helper()

	reqJSON, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		t.Fatalf("json.Marshal(graphQLRequest) failed: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/graphql", bytes.NewReader(reqJSON))
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	//実行エラーでも200で返る設計なので、200以外はサーバ側の異常
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, http.StatusOK, string(body))
	}

	var out graphQLResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("json.Unmarshal(graphQLResponse) failed: %v body=%s", err, string(body))
	}
	return out
}

// 実行エラーがないことを確認してdataを取り出す
func requireData(t *testing.T, resp graphQLResponse) json.RawMessage {
	t.Helper()
	if len(resp.Errors) > 0 {
		t.Fatalf("graphql errors: %+v", resp.Errors)
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		t.Fatalf("graphql data is empty")
	}
	return resp.Data
}

func mustDecodeData(t *testing.T, data json.RawMessage, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("json.Unmarshal(data) failed: %v data=%s", err, string(data))
	}
}

// レスポンスの共通DTO。IDとDecimalはどちらも文字列で返る。

type CustomerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ProductDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int64  `json:"stock"`
}

type OrderDTO struct {
	ID          string       `json:"id"`
	Customer    *CustomerDTO `json:"customer"`
	Products    []ProductDTO `json:"products"`
	OrderDate   string       `json:"orderDate"`
	Status      string       `json:"status"`
	TotalAmount string       `json:"totalAmount"`
}

type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// 衝突しない名前を作る（再実行や並行実行でぶつからないように）
func uniqueSuffix() string {
	return time.Now().Format("20060102-150405.000000000")
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("e2e-%s-%s@example.com", prefix, uniqueSuffix())
}

// createCustomerを実行して成功した顧客を返す
func createCustomer(t *testing.T, c *TestClient, ctx context.Context, name, email, phone string) CustomerDTO {
	t.Helper()

	resp := c.doGraphQL(ctx, t, `
		mutation CreateCustomer($input: CustomerInput!) {
			createCustomer(input: $input) {
				customer { id name email phone }
				message
				errors { field message }
			}
		}`, map[string]interface{}{
		"input": map[string]interface{}{
			"name":  name,
			"email": email,
			"phone": phone,
		},
	})

	var data struct {
		CreateCustomer struct {
			Customer *CustomerDTO    `json:"customer"`
			Message  string          `json:"message"`
			Errors   []FieldErrorDTO `json:"errors"`
		} `json:"createCustomer"`
	}
	mustDecodeData(t, requireData(t, resp), &data)

	if len(data.CreateCustomer.Errors) != 0 {
		t.Fatalf("createCustomer errors: %+v", data.CreateCustomer.Errors)
	}
	if data.CreateCustomer.Customer == nil {
		t.Fatalf("createCustomer returned nil customer")
	}
	return *data.CreateCustomer.Customer
}

// createProductを実行して成功した商品を返す
func createProduct(t *testing.T, c *TestClient, ctx context.Context, name, price string, stock int64) ProductDTO {
	t.Helper()

	resp := c.doGraphQL(ctx, t, `
		mutation CreateProduct($input: ProductInput!) {
			createProduct(input: $input) {
				product { id name price stock }
				errors { field message }
			}
		}`, map[string]interface{}{
		"input": map[string]interface{}{
			"name":  name,
			"price": price,
			"stock": stock,
		},
	})

	var data struct {
		CreateProduct struct {
			Product *ProductDTO     `json:"product"`
			Errors  []FieldErrorDTO `json:"errors"`
		} `json:"createProduct"`
	}
	mustDecodeData(t, requireData(t, resp), &data)

	if len(data.CreateProduct.Errors) != 0 {
		t.Fatalf("createProduct errors: %+v", data.CreateProduct.Errors)
	}
	if data.CreateProduct.Product == nil {
		t.Fatalf("createProduct returned nil product")
	}
	return *data.CreateProduct.Product
}

// productクエリで現在の在庫を読む
func fetchProduct(t *testing.T, c *TestClient, ctx context.Context, id string) ProductDTO {
	t.Helper()

	resp := c.doGraphQL(ctx, t, `
		query Product($id: ID!) {
			product(id: $id) { id name price stock }
		}`, map[string]interface{}{"id": id})

	var data struct {
		Product *ProductDTO `json:"product"`
	}
	mustDecodeData(t, requireData(t, resp), &data)

	if data.Product == nil {
		t.Fatalf("product %s not found", id)
	}
	return *data.Product
}

func findFieldError(errs []FieldErrorDTO, field string) (FieldErrorDTO, bool) {
	for _, e := range errs {
		if e.Field == field {
			return e, true
		}
	}
	return FieldErrorDTO{}, false
}
