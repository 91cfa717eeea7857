package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/util"
)

type UserController struct {
	*baseController
}

func (uc UserController) GetMe(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) GetUserById(ctx *gin.Context) {
	userId := ctx.Param("user_id")
	user, err := uc.app.Repository.User.GetById(ctx, nil, userId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

type updateRoleRequest struct {
	Role string `json:"role" form:"role" binding:"required,oneof=admin inspector engineer client"`
}

func (uc UserController) UpdateUserRole(ctx *gin.Context) {
	userId := ctx.Param("user_id")

	var req updateRoleRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.User.UpdateRole(ctx, nil, userId, constant.UserRole(req.Role)); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// GetMyInspections lists the inspections performed by the authenticated user.
func (uc UserController) GetMyInspections(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	page, pageSize := readPageQuery(ctx)
	inspections, total, err := uc.app.Repository.Inspection.ListByInspector(ctx, nil, authUser.ID, page, pageSize)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspections": inspections,
		"total":       total,
		"totalPage":   util.CalculateTotalPage(total, pageSize),
		"page":        page,
		"pageSize":    pageSize,
	})
}

func readPageQuery(ctx *gin.Context) (uint, uint) {
	page, _ := strconv.ParseUint(ctx.DefaultQuery("page", "1"), 10, 32)
	pageSize, _ := strconv.ParseUint(ctx.DefaultQuery("pageSize", strconv.Itoa(constant.DefaultPageSize)), 10, 32)
	return util.NormalizePageQuery(uint(page), uint(pageSize))
}
