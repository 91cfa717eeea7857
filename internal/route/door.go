package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/controller"
	"github.com/sealteck/doortrack/internal/middleware"
)

func V1_Doors(r *gin.RouterGroup, dc *controller.DoorController, ic *controller.InspectionController, cc *controller.CertificationController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/doors")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", middleware.RequirePermission(constant.DoorCreate), dc.Create)
		v1.GET("", middleware.RequirePermission(constant.DoorRead), dc.List)
		v1.GET("/:door_id", middleware.RequirePermission(constant.DoorRead), dc.GetById)
		v1.PATCH("/:door_id", middleware.RequirePermission(constant.DoorCreate), dc.Update)
		v1.DELETE("/:door_id", middleware.RequirePermission(constant.DoorCreate), dc.Delete)

		v1.GET("/:door_id/inspections", middleware.RequirePermission(constant.DoorRead), ic.ListByDoor)
		v1.POST("/:door_id/inspections", middleware.RequirePermission(constant.InspectionStart), ic.Start)

		v1.POST("/:door_id/review", middleware.RequirePermission(constant.CertificationReview), cc.OpenReview)
		v1.POST("/:door_id/certifications", middleware.RequirePermission(constant.CertificationIssue), cc.Certify)
		v1.POST("/:door_id/reject", middleware.RequirePermission(constant.CertificationReject), cc.Reject)
		v1.GET("/:door_id/certificate", middleware.RequirePermission(constant.DoorRead), cc.GetCertificate)
	}
}
