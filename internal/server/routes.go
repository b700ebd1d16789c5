package server

import (
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, gh *handler.GraphQLHandler) {
	e.POST("/graphql", gh.Execute)
	e.GET("/healthz", gh.Healthz)
}
