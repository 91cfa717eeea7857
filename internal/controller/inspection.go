package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/repository"
	"github.com/sealteck/doortrack/internal/util"
	"github.com/sealteck/doortrack/pkg/doorflow"
)

type InspectionController struct {
	*baseController
}

type startInspectionRequest struct {
	Notes string `json:"notes" form:"notes"`
}

func (ic InspectionController) Start(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	authUser, err := ic.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	var req startInspectionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	inspection, err := ic.app.Repository.Inspection.Start(ctx, nil, doorId, authUser.ID, req.Notes)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspection": inspection,
	})
}

func (ic InspectionController) Complete(ctx *gin.Context) {
	inspectionId := ctx.Param("inspection_id")

	policy := doorflow.CompletionPolicy{RequireAllChecks: ic.app.Config.Door.RequireAllChecks}
	inspection, err := ic.app.Repository.Inspection.Complete(ctx, nil, inspectionId, policy)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	summary, err := ic.app.Repository.InspectionCheck.Summary(ctx, nil, inspectionId)
	if err != nil {
		ic.app.Logger.Warnf("Failed to summarize checks for notification: %v", err)
	}

	door, err := ic.app.Repository.Door.GetById(ctx, nil, inspection.DoorID)
	if err == nil {
		ic.notifyInspectionCompleted(ctx, door, inspection, summary.Completed, summary.Total)
	} else {
		ic.app.Logger.Warnf("Failed to load door for notification: %v", err)
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspection": inspection,
		"checks":     summary,
	})
}

func (ic InspectionController) Delete(ctx *gin.Context) {
	inspectionId := ctx.Param("inspection_id")

	if err := ic.app.Repository.Inspection.Delete(ctx, nil, inspectionId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (ic InspectionController) GetById(ctx *gin.Context) {
	inspectionId := ctx.Param("inspection_id")

	inspection, err := ic.app.Repository.Inspection.GetById(ctx, nil, inspectionId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	summary, err := ic.app.Repository.InspectionCheck.Summary(ctx, nil, inspectionId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspection": inspection,
		"checks":     summary,
	})
}

func (ic InspectionController) ListByDoor(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	inspections, err := ic.app.Repository.Inspection.ListByDoor(ctx, nil, doorId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"inspections": inspections,
	})
}

type updateCheckRequest struct {
	IsChecked *bool   `form:"isChecked" json:"isChecked"`
	Notes     *string `form:"notes" json:"notes"`
}

// UpdateCheck records one checklist answer. Accepts multipart form data with
// an optional photo; the photo is uploaded first so a storage failure leaves
// the check untouched.
func (ic InspectionController) UpdateCheck(ctx *gin.Context) {
	inspectionId := ctx.Param("inspection_id")
	checkId := ctx.Param("check_id")

	var req updateCheckRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	params := repository.UpdateCheckParams{
		IsChecked: req.IsChecked,
		Notes:     req.Notes,
	}

	if photo, err := ctx.FormFile("photo"); err == nil && photo != nil {
		inspection, err := ic.app.Repository.Inspection.GetById(ctx, nil, inspectionId)
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}

		bucket := ic.app.Config.Minio.BUCKET_NAME
		info, err := util.UploadFileToS3ByFileHeader(photo, &util.FileUploadOptions{
			DirectoryPath: util.GetInspectionPhotoDirectoryPath(inspection.DoorID, inspectionId),
			UniquePrefix:  true,
			Bucket:        bucket,
			S3:            ic.app.S3,
		})
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}

		file, err := ic.app.Repository.File.Create(ctx, nil, &model.File{
			FileName:       photo.Filename,
			UniqueFileName: info.Key,
			BucketName:     bucket,
			Size:           info.Size,
		})
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}

		params.PhotoFileID = &file.ID
	}

	check, err := ic.app.Repository.InspectionCheck.Update(ctx, nil, checkId, params)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"check": check,
	})
}
