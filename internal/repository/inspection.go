package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/util"
	"github.com/sealteck/doortrack/pkg/doorflow"
	"gorm.io/gorm"
)

type InspectionRepository struct {
	*baseRepository
	check *InspectionCheckRepository
}

// Start opens a new inspection on a door and creates one unchecked item per
// active inspection point. On a rejected door the new inspection always wins:
// every earlier non-superseded inspection is marked superseded first, so the
// re-inspection starts from a clean slate. The door lock, the supersede and
// the insert commit together or not at all.
func (ir *InspectionRepository) Start(ctx context.Context, tx *gorm.DB, doorId, inspectorId string, notes string) (*model.Inspection, error) {
	ir.logger.Debugf("Start inspection for door: %s by inspector: %s \n", doorId, inspectorId)

	db := ir.getDB(tx)
	var inspection model.Inspection

	txErr := ir.withTx(db, func(tx2 *gorm.DB) error {
		door, err := lockDoor(ctx, tx2, doorId)
		if err != nil {
			return err
		}

		newState, err := doorflow.Transition(door.State(), doorflow.EventStartInspection)
		if err != nil {
			return err
		}

		if door.CertificationStatus == doorflow.CertificationRejected {
			if err := tx2.WithContext(ctx).Model(&model.Inspection{}).
				Where("door_id = ? AND status <> ?", doorId, doorflow.InspectionRecordSuperseded).
				Updates(map[string]any{"status": doorflow.InspectionRecordSuperseded}).Error; err != nil {
				return err
			}
		}

		inspection = model.Inspection{
			InspectionDate: time.Now(),
			Status:         doorflow.InspectionRecordInProgress,
			Notes:          notes,
			DoorID:         doorId,
			InspectorID:    inspectorId,
		}
		if err := tx2.WithContext(ctx).Model(&model.Inspection{}).Create(&inspection).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("door %s already has an inspection in progress", doorId)
			}
			return err
		}

		if err := ir.check.createForInspection(ctx, tx2, inspection.ID); err != nil {
			return err
		}

		// The rejection reason survives until the re-inspection completes.
		return applyDoorState(ctx, tx2, doorId, newState, nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	return ir.GetById(ctx, tx, inspection.ID)
}

// Complete closes an in-progress inspection. Completing the re-inspection of
// a rejected door clears the rejection and returns the door to the review
// queue. The checklist completion ratio is validated against the configured
// policy before anything is written.
func (ir *InspectionRepository) Complete(ctx context.Context, tx *gorm.DB, inspectionId string, policy doorflow.CompletionPolicy) (*model.Inspection, error) {
	ir.logger.Debugf("Complete inspection: %s \n", inspectionId)

	db := ir.getDB(tx)

	txErr := ir.withTx(db, func(tx2 *gorm.DB) error {
		inspection, err := ir.getByIdBare(ctx, tx2, inspectionId)
		if err != nil {
			return err
		}
		if inspection.Status != doorflow.InspectionRecordInProgress {
			return apperror.InvalidState("inspection %s is not in progress", inspectionId)
		}

		door, err := lockDoor(ctx, tx2, inspection.DoorID)
		if err != nil {
			return err
		}

		state := door.State()
		newState, err := doorflow.Transition(state, doorflow.EventCompleteInspection)
		if err != nil {
			return err
		}

		summary, err := ir.check.Summary(ctx, tx2, inspectionId)
		if err != nil {
			return err
		}
		if err := policy.ValidateCompletion(summary); err != nil {
			return err
		}

		now := time.Now()
		if err := tx2.WithContext(ctx).Model(&model.Inspection{}).
			Where(model.Inspection{BaseModel: model.BaseModel{ID: inspectionId}}).
			Updates(map[string]any{
				"status":         doorflow.InspectionRecordCompleted,
				"completed_date": now,
			}).Error; err != nil {
			return err
		}

		var clearReason *string
		if doorflow.ClearsRejection(state, doorflow.EventCompleteInspection) {
			empty := ""
			clearReason = &empty
		}

		return applyDoorState(ctx, tx2, inspection.DoorID, newState, clearReason)
	})
	if txErr != nil {
		return nil, txErr
	}

	return ir.GetById(ctx, tx, inspectionId)
}

// Delete removes an inspection and recomputes the owning door's inspection
// status from what remains, all under the door lock so a concurrent start or
// complete cannot slip between the count and the delete. Inspections a
// certification was based on are protected.
func (ir *InspectionRepository) Delete(ctx context.Context, tx *gorm.DB, inspectionId string) error {
	ir.logger.Debugf("Delete inspection: %s \n", inspectionId)

	db := ir.getDB(tx)

	return ir.withTx(db, func(tx2 *gorm.DB) error {
		inspection, err := ir.getByIdBare(ctx, tx2, inspectionId)
		if err != nil {
			return err
		}

		door, err := lockDoor(ctx, tx2, inspection.DoorID)
		if err != nil {
			return err
		}

		var certCount int64
		if err := tx2.WithContext(ctx).Model(&model.Certification{}).
			Where(model.Certification{InspectionID: inspectionId}).
			Count(&certCount).Error; err != nil {
			return err
		}
		if certCount > 0 {
			return apperror.InvalidState("inspection %s backs a certification, delete the certification first", inspectionId)
		}

		if err := tx2.WithContext(ctx).Where(model.Inspection{
			BaseModel: model.BaseModel{ID: inspectionId},
		}).Delete(&model.Inspection{}).Error; err != nil {
			return err
		}

		newStatus, err := ir.remainingInspectionStatus(ctx, tx2, inspection.DoorID)
		if err != nil {
			return err
		}

		state := door.State()
		state.Inspection = newStatus
		return applyDoorState(ctx, tx2, inspection.DoorID, state, nil)
	})
}

// remainingInspectionStatus derives the door-level inspection status from the
// non-superseded inspections left after a delete. No rows means the door is
// back to never-inspected.
func (ir InspectionRepository) remainingInspectionStatus(ctx context.Context, tx *gorm.DB, doorId string) (doorflow.InspectionStatus, error) {
	var inProgress int64
	if err := tx.WithContext(ctx).Model(&model.Inspection{}).
		Where("door_id = ? AND status = ?", doorId, doorflow.InspectionRecordInProgress).
		Count(&inProgress).Error; err != nil {
		return doorflow.InspectionPending, err
	}
	if inProgress > 0 {
		return doorflow.InspectionInProgress, nil
	}

	var completed int64
	if err := tx.WithContext(ctx).Model(&model.Inspection{}).
		Where("door_id = ? AND status = ?", doorId, doorflow.InspectionRecordCompleted).
		Count(&completed).Error; err != nil {
		return doorflow.InspectionPending, err
	}
	if completed > 0 {
		return doorflow.InspectionCompleted, nil
	}

	return doorflow.InspectionPending, nil
}

// GetAuthoritative returns the inspection a certification decision must be
// based on: the most recent completed, non-superseded inspection of the door.
func (ir InspectionRepository) GetAuthoritative(ctx context.Context, tx *gorm.DB, doorId string) (*model.Inspection, error) {
	ir.logger.Debugf("Get authoritative inspection for door: %s \n", doorId)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var inspection model.Inspection
	if err := db.WithContext(ctx).Model(&model.Inspection{}).
		Preload("Checks").
		Preload("Checks.InspectionPoint").
		Preload("Inspector").
		Where("door_id = ? AND status = ?", doorId, doorflow.InspectionRecordCompleted).
		Order("inspection_date DESC").
		First(&inspection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("door %s has no completed inspection", doorId)
		}
		return nil, err
	}

	return &inspection, nil
}

func (ir InspectionRepository) GetById(ctx context.Context, tx *gorm.DB, inspectionId string) (*model.Inspection, error) {
	ir.logger.Debugf("Get inspection by id: %s \n", inspectionId)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var inspection model.Inspection
	if err := db.WithContext(ctx).Model(&model.Inspection{}).
		Preload("Checks", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN inspection_points ON inspection_points.id = inspection_checks.inspection_point_id").
				Order("inspection_points.order_index ASC")
		}).
		Preload("Checks.InspectionPoint").
		Preload("Checks.PhotoFile").
		Preload("Inspector").
		Preload("Door").
		Where(model.Inspection{BaseModel: model.BaseModel{ID: inspectionId}}).
		First(&inspection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("inspection %s not found", inspectionId)
		}
		return nil, err
	}

	return &inspection, nil
}

func (ir InspectionRepository) ListByDoor(ctx context.Context, tx *gorm.DB, doorId string) ([]model.Inspection, error) {
	ir.logger.Debugf("List inspections for door: %s \n", doorId)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var inspections []model.Inspection
	if err := db.WithContext(ctx).Model(&model.Inspection{}).
		Preload("Inspector").
		Where(model.Inspection{DoorID: doorId}).
		Order("inspection_date DESC").
		Find(&inspections).Error; err != nil {
		return nil, err
	}

	return inspections, nil
}

func (ir InspectionRepository) ListByInspector(ctx context.Context, tx *gorm.DB, inspectorId string, page, pageSize uint) ([]model.Inspection, int64, error) {
	ir.logger.Debugf("List inspections for inspector: %s \n", inspectorId)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	page, pageSize = util.NormalizePageQuery(page, pageSize)

	query := db.WithContext(ctx).Model(&model.Inspection{}).
		Where(model.Inspection{InspectorID: inspectorId})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inspections []model.Inspection
	if err := query.Preload("Door").
		Order("inspection_date DESC").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&inspections).Error; err != nil {
		return nil, 0, err
	}

	return inspections, total, nil
}

// getByIdBare loads an inspection without preloads, for use inside lifecycle
// transactions.
func (ir InspectionRepository) getByIdBare(ctx context.Context, tx *gorm.DB, inspectionId string) (*model.Inspection, error) {
	var inspection model.Inspection
	if err := tx.WithContext(ctx).Model(&model.Inspection{}).
		Where(model.Inspection{BaseModel: model.BaseModel{ID: inspectionId}}).
		First(&inspection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("inspection %s not found", inspectionId)
		}
		return nil, err
	}

	return &inspection, nil
}
