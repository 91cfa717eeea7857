package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/middleware"
)

func V1_Me(r *gin.RouterGroup, uc *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/me")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", uc.GetMe)
		v1.GET("/inspections", uc.GetMyInspections)
	}
}
