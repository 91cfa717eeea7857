package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/repository"
	"github.com/sealteck/doortrack/internal/util"
	"github.com/sealteck/doortrack/pkg/doorflow"
)

type DoorController struct {
	*baseController
}

type createDoorRequest struct {
	PoID        string `json:"poId" form:"poId" binding:"required,strNotEmpty"`
	DoorNumber  int    `json:"doorNumber" form:"doorNumber" binding:"required,cmin=1"`
	JobNumber   string `json:"jobNumber" form:"jobNumber" binding:"required,strNotEmpty"`
	Description string `json:"description" form:"description"`
	Pressure    int    `json:"pressure" form:"pressure" binding:"required,oneof=140 400"`
	Size        string `json:"size" form:"size" binding:"required,oneof=1.5 1.8 2.0"`
}

func (dc DoorController) Create(ctx *gin.Context) {
	var req createDoorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	door, err := dc.app.Repository.Door.Create(ctx, nil, repository.NewDoorParams{
		PoID:        req.PoID,
		DoorNumber:  req.DoorNumber,
		JobNumber:   req.JobNumber,
		Description: req.Description,
		Pressure:    req.Pressure,
		Size:        req.Size,
	})
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"door": door,
	})
}

func (dc DoorController) List(ctx *gin.Context) {
	page, pageSize := readPageQuery(ctx)

	filter := repository.DoorListFilter{
		Search: ctx.Query("search"),
		PoID:   ctx.Query("poId"),
	}
	if s := ctx.Query("inspectionStatus"); s != "" {
		status, err := doorflow.ParseInspectionStatus(s)
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}
		filter.InspectionStatus = &status
	}
	if s := ctx.Query("certificationStatus"); s != "" {
		status, err := doorflow.ParseCertificationStatus(s)
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}
		filter.CertificationStatus = &status
	}

	doors, total, err := dc.app.Repository.Door.List(ctx, nil, filter, page, pageSize)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"doors":     doors,
		"total":     total,
		"totalPage": util.CalculateTotalPage(total, pageSize),
		"page":      page,
		"pageSize":  pageSize,
	})
}

func (dc DoorController) GetById(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	door, err := dc.app.Repository.Door.GetById(ctx, nil, doorId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"door": door,
	})
}

type updateDoorRequest struct {
	JobNumber   string `json:"jobNumber" form:"jobNumber" binding:"required,strNotEmpty"`
	Description string `json:"description" form:"description"`
}

func (dc DoorController) Update(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	var req updateDoorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := dc.app.Repository.Door.Update(ctx, nil, doorId, req.JobNumber, req.Description); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	door, err := dc.app.Repository.Door.GetById(ctx, nil, doorId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"door": door,
	})
}

func (dc DoorController) Delete(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	if err := dc.app.Repository.Door.Delete(ctx, nil, doorId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
