package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/middleware"
)

func V1_Users(r *gin.RouterGroup, uc *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/:user_id", uc.GetUserById)
		v1.PATCH("/:user_id/role", middleware.RequirePermission(constant.UserManage), uc.UpdateUserRole)
	}
}
