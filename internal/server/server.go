package server

import (
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/handler"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Newはルーティング済みのechoサーバを組み立てる。
// 起動（Start）と停止（Shutdown）は呼び出し側が握る。
func New(gh *handler.GraphQLHandler, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, gh)
	return e
}
