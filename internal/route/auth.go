package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/controller"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController) {
	v1 := r.Group("/v1/auth")
	{
		v1.POST("/login", authController.Login)
		v1.POST("/register", authController.Register)
		v1.POST("/logout", authController.Logout)
		v1.POST("/jwt/access/verify/:token", authController.VerifyJwtAccessToken)
		v1.POST("/jwt/refresh", authController.RefreshAccessToken)
	}
}
