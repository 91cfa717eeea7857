package controller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/util"
	"github.com/sealteck/doortrack/pkg/certpdf"
)

type CertificationController struct {
	*baseController
}

func (cc CertificationController) OpenReview(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	door, err := cc.app.Repository.Certification.OpenReview(ctx, nil, doorId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"door": door,
	})
}

// Certify renders and stores the certificate, then records the decision.
// Rendering happens before the lifecycle transaction: a renderer or storage
// failure aborts the whole operation, while a failed transaction leaves only
// an orphan object in the bucket.
func (cc CertificationController) Certify(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	door, err := cc.app.Repository.Door.GetById(ctx, nil, doorId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	inspection, err := cc.app.Repository.Inspection.GetAuthoritative(ctx, nil, doorId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	engineer, err := cc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	bucket := cc.app.Config.Minio.BUCKET_NAME

	// Optional signature image stamped onto the certificate.
	var signatureFileId *string
	signaturePath := ""
	if signature, err := ctx.FormFile("signature"); err == nil && signature != nil {
		tmp, err := util.CreateTemp("signature-*" + filepath.Ext(signature.Filename))
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}
		tmp.Close()
		defer os.Remove(tmp.Name())

		if err := ctx.SaveUploadedFile(signature, tmp.Name()); err != nil {
			util.ResponseError(ctx, err)
			return
		}
		signaturePath = tmp.Name()

		info, err := util.UploadFileToS3ByFileHeader(signature, &util.FileUploadOptions{
			DirectoryPath: util.GetDoorDirectoryPath(doorId),
			UniquePrefix:  true,
			Bucket:        bucket,
			S3:            cc.app.S3,
		})
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}

		file, err := cc.app.Repository.File.Create(ctx, nil, &model.File{
			FileName:       signature.Filename,
			UniqueFileName: info.Key,
			BucketName:     bucket,
			Size:           info.Size,
		})
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}
		signatureFileId = &file.ID
	}

	checks := make([]certpdf.CheckLine, 0, len(inspection.Checks))
	for _, check := range inspection.Checks {
		line := certpdf.CheckLine{
			Name:    check.InspectionPoint.Name,
			Checked: check.IsChecked,
		}
		if check.Notes != nil {
			line.Notes = *check.Notes
		}
		checks = append(checks, line)
	}

	pdfPath, err := cc.app.CertRenderer.Render(certpdf.CertificateData{
		Door: certpdf.DoorInfo{
			SerialNumber:  door.SerialNumber,
			DrawingNumber: door.DrawingNumber,
			DoorNumber:    fmt.Sprintf("%d", door.DoorNumber),
			JobNumber:     door.JobNumber,
			PoNumber:      door.PurchaseOrder.PoNumber,
			DoorType:      string(door.DoorType),
			Size:          door.Size,
			Pressure:      door.Pressure,
		},
		Checks:        checks,
		EngineerName:  engineer.FullName(),
		CertifiedAt:   time.Now(),
		VerifyURL:     fmt.Sprintf("%s/api/v1/doors/%s/certificate", cc.app.Config.AppURL, doorId),
		SignaturePath: signaturePath,
	})
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}
	defer os.Remove(pdfPath)

	info, err := util.UploadFileToS3ByPath(pdfPath, &util.FileUploadOptions{
		DirectoryPath: util.GetCertificateDirectoryPath(doorId),
		UniquePrefix:  false,
		Bucket:        bucket,
		S3:            cc.app.S3,
	})
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	pdfFile, err := cc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       filepath.Base(pdfPath),
		UniqueFileName: info.Key,
		BucketName:     bucket,
		Size:           info.Size,
	})
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	certification, err := cc.app.Repository.Certification.Certify(ctx, nil, doorId, authUser.ID, inspection.ID, pdfFile.ID, signatureFileId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	certificateURL, err := pdfFile.ToPresignedUrl(ctx, cc.app.S3)
	if err != nil {
		cc.app.Logger.Warnf("Failed to presign certificate url: %v", err)
		certificateURL = fmt.Sprintf("%s/api/v1/doors/%s/certificate", cc.app.Config.AppURL, doorId)
	}
	cc.notifyCertificationIssued(ctx, door, certification, certificateURL)

	util.ResponseSuccess(ctx, gin.H{
		"certification": certification,
	})
}

type rejectRequest struct {
	Reason string `json:"reason" form:"reason" binding:"required,strNotEmpty"`
}

func (cc CertificationController) Reject(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	var req rejectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	door, err := cc.app.Repository.Certification.Reject(ctx, nil, doorId, authUser.ID, req.Reason)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	cc.notifyInspectionRejected(ctx, door, fmt.Sprintf("%s %s", authUser.FirstName, authUser.LastName), req.Reason)

	util.ResponseSuccess(ctx, gin.H{
		"door": door,
	})
}

func (cc CertificationController) Delete(ctx *gin.Context) {
	certificationId := ctx.Param("certification_id")

	pdfFile, err := cc.app.Repository.Certification.Delete(ctx, nil, certificationId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	// Remove the stored certificate after the lifecycle rollback commits.
	if pdfFile != nil && pdfFile.ID != "" {
		if err := cc.app.Repository.File.Delete(ctx, nil, pdfFile.ID); err != nil {
			cc.app.Logger.Warnf("Failed to delete certificate file %s: %v", pdfFile.ID, err)
		}
	}

	util.ResponseSuccess(ctx, nil)
}

// GetCertificate answers with a short-lived presigned download link for the
// door's active certificate.
func (cc CertificationController) GetCertificate(ctx *gin.Context) {
	doorId := ctx.Param("door_id")

	certification, err := cc.app.Repository.Certification.GetActiveByDoor(ctx, nil, doorId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	url, err := certification.CertificatePdf.ToPresignedUrl(ctx, cc.app.S3)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certification": certification,
		"url":           url,
	})
}
