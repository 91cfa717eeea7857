package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/util"
)

type InspectionPointController struct {
	*baseController
}

func (pc InspectionPointController) List(ctx *gin.Context) {
	activeOnly, _ := strconv.ParseBool(ctx.DefaultQuery("activeOnly", "false"))

	points, err := pc.app.Repository.InspectionPoint.List(ctx, nil, activeOnly)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspectionPoints": points,
	})
}

func (pc InspectionPointController) Create(ctx *gin.Context) {
	var newPoint model.InspectionPoint
	if err := ctx.ShouldBind(&newPoint); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	point, err := pc.app.Repository.InspectionPoint.Create(ctx, nil, newPoint)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspectionPoint": point,
	})
}

func (pc InspectionPointController) Update(ctx *gin.Context) {
	pointId := ctx.Param("point_id")

	var updated model.InspectionPoint
	if err := ctx.ShouldBind(&updated); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	point, err := pc.app.Repository.InspectionPoint.Update(ctx, nil, pointId, updated)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspectionPoint": point,
	})
}

func (pc InspectionPointController) Deactivate(ctx *gin.Context) {
	pointId := ctx.Param("point_id")

	if err := pc.app.Repository.InspectionPoint.Deactivate(ctx, nil, pointId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (pc InspectionPointController) Delete(ctx *gin.Context) {
	pointId := ctx.Param("point_id")

	if err := pc.app.Repository.InspectionPoint.Delete(ctx, nil, pointId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
