package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-management-api/internal/application"
	"user-management-api/internal/infrastructure/token"
	handlers "user-management-api/internal/interface/http"
	"user-management-api/internal/interface/middleware"
)

// UserModule wires the JWT-protected user CRUD routes.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *token.JWTManager
}

func NewUserModule(svc *application.Service, logger *logrus.Logger, jwt *token.JWTManager) *UserModule {
	return &UserModule{Handler: handlers.NewUserHandler(svc, logger), JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/users", m.Handler.List)
		auth.POST("/users", m.Handler.Create)
		auth.GET("/users/search", m.Handler.Search)
		auth.GET("/users/:id", m.Handler.Get)
		auth.PUT("/users/:id", m.Handler.Update)
	}
}
