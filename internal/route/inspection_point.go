package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/middleware"
)

func V1_InspectionPoints(r *gin.RouterGroup, pc *controller.InspectionPointController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/inspection-points")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", middleware.RequirePermission(constant.DoorRead), pc.List)
		v1.POST("", middleware.RequirePermission(constant.ChecklistManage), pc.Create)
		v1.PATCH("/:point_id", middleware.RequirePermission(constant.ChecklistManage), pc.Update)
		v1.POST("/:point_id/deactivate", middleware.RequirePermission(constant.ChecklistManage), pc.Deactivate)
		v1.DELETE("/:point_id", middleware.RequirePermission(constant.ChecklistManage), pc.Delete)
	}
}
