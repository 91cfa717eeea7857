package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/util"
)

type PurchaseOrderController struct {
	*baseController
}

func (pc PurchaseOrderController) Create(ctx *gin.Context) {
	var newPo model.PurchaseOrder
	if err := ctx.ShouldBind(&newPo); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	po, err := pc.app.Repository.PurchaseOrder.Create(ctx, nil, newPo)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"purchaseOrder": po,
	})
}

func (pc PurchaseOrderController) List(ctx *gin.Context) {
	page, pageSize := readPageQuery(ctx)
	search := ctx.Query("search")

	pos, total, err := pc.app.Repository.PurchaseOrder.List(ctx, nil, search, page, pageSize)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"purchaseOrders": pos,
		"total":          total,
		"totalPage":      util.CalculateTotalPage(total, pageSize),
		"page":           page,
		"pageSize":       pageSize,
	})
}

func (pc PurchaseOrderController) GetById(ctx *gin.Context) {
	poId := ctx.Param("po_id")

	po, err := pc.app.Repository.PurchaseOrder.GetById(ctx, nil, poId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"purchaseOrder": po,
	})
}

func (pc PurchaseOrderController) Delete(ctx *gin.Context) {
	poId := ctx.Param("po_id")

	if err := pc.app.Repository.PurchaseOrder.Delete(ctx, nil, poId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
