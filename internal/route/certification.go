package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/middleware"
)

func V1_Certifications(r *gin.RouterGroup, cc *controller.CertificationController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/certifications")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.DELETE("/:certification_id", middleware.RequirePermission(constant.CertificationDelete), cc.Delete)
	}
}
