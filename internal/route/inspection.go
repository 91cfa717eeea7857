package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/middleware"
)

func V1_Inspections(r *gin.RouterGroup, ic *controller.InspectionController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/inspections")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/:inspection_id", middleware.RequirePermission(constant.DoorRead), ic.GetById)
		v1.POST("/:inspection_id/complete", middleware.RequirePermission(constant.InspectionComplete), ic.Complete)
		v1.DELETE("/:inspection_id", middleware.RequirePermission(constant.InspectionDelete), ic.Delete)
		v1.PATCH("/:inspection_id/checks/:check_id", middleware.RequirePermission(constant.CheckUpdate), ic.UpdateCheck)
	}
}
