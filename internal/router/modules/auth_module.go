package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-management-api/internal/application"
	handlers "user-management-api/internal/interface/http"
)

// AuthModule wires the public registration and login routes.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(svc *application.Service, logger *logrus.Logger) *AuthModule {
	return &AuthModule{Handler: handlers.NewAuthHandler(svc, logger)}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
}
