package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/middleware"
)

func V1_PurchaseOrders(r *gin.RouterGroup, pc *controller.PurchaseOrderController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/purchase-orders")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", middleware.RequirePermission(constant.PurchaseOrderManage), pc.Create)
		v1.GET("", middleware.RequirePermission(constant.DoorRead), pc.List)
		v1.GET("/:po_id", middleware.RequirePermission(constant.DoorRead), pc.GetById)
		v1.DELETE("/:po_id", middleware.RequirePermission(constant.PurchaseOrderManage), pc.Delete)
	}
}
