package handler

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// /graphql のAPI。クエリもmutationも全部ここを通る。
type GraphQLHandler struct {
	schema graphql.Schema
}

// DI
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *GraphQLHandler) Execute(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query is required"})
	}

	// 実行エラー（バリデーション含む）はresult.Errorsに入って200で返る
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})

	return c.JSON(http.StatusOK, result)
}

func (h *GraphQLHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
