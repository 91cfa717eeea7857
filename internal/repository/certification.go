package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/pkg/doorflow"
	"gorm.io/gorm"
)

type CertificationRepository struct {
	*baseRepository
}

// OpenReview marks a door as being looked at by an engineer. Purely
// informational on top of the lifecycle; a certify or reject from another
// engineer still wins by taking the door lock first.
func (cr *CertificationRepository) OpenReview(ctx context.Context, tx *gorm.DB, doorId string) (*model.Door, error) {
	cr.logger.Debugf("Open certification review for door: %s \n", doorId)

	db := cr.getDB(tx)
	var door *model.Door

	txErr := cr.withTx(db, func(tx2 *gorm.DB) error {
		locked, err := lockDoor(ctx, tx2, doorId)
		if err != nil {
			return err
		}

		newState, err := doorflow.Transition(locked.State(), doorflow.EventOpenReview)
		if err != nil {
			return err
		}

		if err := applyDoorState(ctx, tx2, doorId, newState, nil); err != nil {
			return err
		}

		locked.InspectionStatus = newState.Inspection
		locked.CertificationStatus = newState.Certification
		door = locked
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return door, nil
}

// Certify records the engineer approval: one immutable certification row plus
// the door's transition to certified, in one transaction under the door lock.
// The certificate PDF is rendered and uploaded by the caller before this is
// called; a failed transaction leaves only an orphan file to garbage-collect,
// never a certified door without its certificate.
func (cr *CertificationRepository) Certify(ctx context.Context, tx *gorm.DB, doorId, engineerId, inspectionId, certificatePdfId string, signatureFileId *string) (*model.Certification, error) {
	cr.logger.Debugf("Certify door: %s by engineer: %s \n", doorId, engineerId)

	db := cr.getDB(tx)
	var certification model.Certification

	txErr := cr.withTx(db, func(tx2 *gorm.DB) error {
		door, err := lockDoor(ctx, tx2, doorId)
		if err != nil {
			return err
		}

		newState, err := doorflow.Transition(door.State(), doorflow.EventCertify)
		if err != nil {
			return err
		}

		var inspection model.Inspection
		if err := tx2.WithContext(ctx).Model(&model.Inspection{}).
			Where(model.Inspection{BaseModel: model.BaseModel{ID: inspectionId}}).
			First(&inspection).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("inspection %s not found", inspectionId)
			}
			return err
		}
		if inspection.DoorID != doorId {
			return apperror.Validation("inspection %s does not belong to door %s", inspectionId, doorId)
		}
		if inspection.Status != doorflow.InspectionRecordCompleted {
			return apperror.InvalidState("inspection %s is not completed", inspectionId)
		}

		certification = model.Certification{
			CertifiedAt:      time.Now(),
			DoorID:           doorId,
			EngineerID:       engineerId,
			InspectionID:     inspectionId,
			CertificatePdfID: certificatePdfId,
			SignatureFileID:  signatureFileId,
		}
		if err := tx2.WithContext(ctx).Model(&model.Certification{}).Create(&certification).Error; err != nil {
			return err
		}

		return applyDoorState(ctx, tx2, doorId, newState, nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	return cr.GetById(ctx, tx, certification.ID)
}

// Reject records the engineer rejection. The reason is mandatory and sticks
// to the door until a re-inspection completes.
func (cr *CertificationRepository) Reject(ctx context.Context, tx *gorm.DB, doorId, engineerId, reason string) (*model.Door, error) {
	cr.logger.Debugf("Reject door: %s by engineer: %s \n", doorId, engineerId)

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.Validation("rejection reason is required")
	}

	db := cr.getDB(tx)
	var door *model.Door

	txErr := cr.withTx(db, func(tx2 *gorm.DB) error {
		locked, err := lockDoor(ctx, tx2, doorId)
		if err != nil {
			return err
		}

		newState, err := doorflow.Transition(locked.State(), doorflow.EventReject)
		if err != nil {
			return err
		}

		if err := applyDoorState(ctx, tx2, doorId, newState, &reason); err != nil {
			return err
		}

		locked.InspectionStatus = newState.Inspection
		locked.CertificationStatus = newState.Certification
		locked.RejectionReason = &reason
		door = locked
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return door, nil
}

// Delete is the admin-only compensating action: it removes the certification
// record and rolls the door back to pending. The certificate file row is
// returned so the caller can remove the object from storage after commit.
func (cr *CertificationRepository) Delete(ctx context.Context, tx *gorm.DB, certificationId string) (*model.File, error) {
	cr.logger.Debugf("Delete certification: %s \n", certificationId)

	db := cr.getDB(tx)
	var pdfFile *model.File

	txErr := cr.withTx(db, func(tx2 *gorm.DB) error {
		var certification model.Certification
		if err := tx2.WithContext(ctx).Model(&model.Certification{}).
			Preload("CertificatePdf").
			Where(model.Certification{BaseModel: model.BaseModel{ID: certificationId}}).
			First(&certification).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("certification %s not found", certificationId)
			}
			return err
		}

		door, err := lockDoor(ctx, tx2, certification.DoorID)
		if err != nil {
			return err
		}

		newState, err := doorflow.Transition(door.State(), doorflow.EventDeleteCertification)
		if err != nil {
			return err
		}

		if err := tx2.WithContext(ctx).Where(model.Certification{
			BaseModel: model.BaseModel{ID: certificationId},
		}).Delete(&model.Certification{}).Error; err != nil {
			return err
		}

		if err := applyDoorState(ctx, tx2, certification.DoorID, newState, nil); err != nil {
			return err
		}

		pdfFile = &certification.CertificatePdf
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return pdfFile, nil
}

func (cr CertificationRepository) GetById(ctx context.Context, tx *gorm.DB, certificationId string) (*model.Certification, error) {
	cr.logger.Debugf("Get certification by id: %s \n", certificationId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certification model.Certification
	if err := db.WithContext(ctx).Model(&model.Certification{}).
		Preload("Door").
		Preload("Engineer").
		Preload("Inspection").
		Preload("CertificatePdf").
		Preload("SignatureFile").
		Where(model.Certification{BaseModel: model.BaseModel{ID: certificationId}}).
		First(&certification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("certification %s not found", certificationId)
		}
		return nil, err
	}

	return &certification, nil
}

func (cr CertificationRepository) GetActiveByDoor(ctx context.Context, tx *gorm.DB, doorId string) (*model.Certification, error) {
	cr.logger.Debugf("Get active certification for door: %s \n", doorId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certification model.Certification
	if err := db.WithContext(ctx).Model(&model.Certification{}).
		Preload("Engineer").
		Preload("CertificatePdf").
		Where(model.Certification{DoorID: doorId}).
		Order("certified_at DESC").
		First(&certification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("door %s has no certification", doorId)
		}
		return nil, err
	}

	return &certification, nil
}
