package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/pkg/doorflow"
	"gorm.io/gorm"
)

type InspectionCheckRepository struct {
	*baseRepository
}

// createForInspection snapshots the active inspection points into unchecked
// items for a freshly started inspection. Later edits to the point catalog do
// not touch inspections already under way.
func (cr *InspectionCheckRepository) createForInspection(ctx context.Context, tx *gorm.DB, inspectionId string) error {
	var points []model.InspectionPoint
	if err := tx.WithContext(ctx).Model(&model.InspectionPoint{}).
		Where(model.InspectionPoint{Active: true}).
		Order("order_index ASC").
		Find(&points).Error; err != nil {
		return err
	}
	if len(points) == 0 {
		return apperror.InvalidState("no active inspection points are configured")
	}

	checks := make([]model.InspectionCheck, 0, len(points))
	for _, point := range points {
		checks = append(checks, model.InspectionCheck{
			InspectionID:      inspectionId,
			InspectionPointID: point.ID,
		})
	}

	return tx.WithContext(ctx).Model(&model.InspectionCheck{}).Create(&checks).Error
}

// UpdateCheckParams carries one checklist answer. Nil fields are left alone.
type UpdateCheckParams struct {
	IsChecked   *bool
	Notes       *string
	PhotoFileID *string
}

// Update records a checklist answer. Only checks of an in-progress inspection
// are writable; checking an item stamps the time, unchecking clears it.
func (cr *InspectionCheckRepository) Update(ctx context.Context, tx *gorm.DB, checkId string, params UpdateCheckParams) (*model.InspectionCheck, error) {
	cr.logger.Debugf("Update inspection check: %s \n", checkId)

	db := cr.getDB(tx)

	txErr := cr.withTx(db, func(tx2 *gorm.DB) error {
		check, err := cr.getByIdBare(ctx, tx2, checkId)
		if err != nil {
			return err
		}

		var inspection model.Inspection
		if err := tx2.WithContext(ctx).Model(&model.Inspection{}).
			Where(model.Inspection{BaseModel: model.BaseModel{ID: check.InspectionID}}).
			First(&inspection).Error; err != nil {
			return err
		}
		if inspection.Status != doorflow.InspectionRecordInProgress {
			return apperror.InvalidState("inspection %s is not in progress, its checklist is read only", inspection.ID)
		}

		updates := map[string]any{}
		if params.IsChecked != nil {
			updates["is_checked"] = *params.IsChecked
			if *params.IsChecked {
				updates["checked_at"] = time.Now()
			} else {
				updates["checked_at"] = nil
			}
		}
		if params.Notes != nil {
			updates["notes"] = *params.Notes
		}
		if params.PhotoFileID != nil {
			updates["photo_file_id"] = *params.PhotoFileID
		}
		if len(updates) == 0 {
			return nil
		}

		return tx2.WithContext(ctx).Model(&model.InspectionCheck{}).
			Where(model.InspectionCheck{BaseModel: model.BaseModel{ID: checkId}}).
			Updates(updates).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return cr.GetById(ctx, tx, checkId)
}

// Summary counts an inspection's checked items against its total.
func (cr InspectionCheckRepository) Summary(ctx context.Context, tx *gorm.DB, inspectionId string) (doorflow.ChecksSummary, error) {
	cr.logger.Debugf("Checks summary for inspection: %s \n", inspectionId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var summary doorflow.ChecksSummary

	var total int64
	if err := db.WithContext(ctx).Model(&model.InspectionCheck{}).
		Where(model.InspectionCheck{InspectionID: inspectionId}).
		Count(&total).Error; err != nil {
		return summary, err
	}

	var completed int64
	if err := db.WithContext(ctx).Model(&model.InspectionCheck{}).
		Where("inspection_id = ? AND is_checked = true", inspectionId).
		Count(&completed).Error; err != nil {
		return summary, err
	}

	summary.Total = int(total)
	summary.Completed = int(completed)
	return summary, nil
}

func (cr InspectionCheckRepository) GetById(ctx context.Context, tx *gorm.DB, checkId string) (*model.InspectionCheck, error) {
	cr.logger.Debugf("Get inspection check by id: %s \n", checkId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var check model.InspectionCheck
	if err := db.WithContext(ctx).Model(&model.InspectionCheck{}).
		Preload("InspectionPoint").
		Preload("PhotoFile").
		Where(model.InspectionCheck{BaseModel: model.BaseModel{ID: checkId}}).
		First(&check).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("inspection check %s not found", checkId)
		}
		return nil, err
	}

	return &check, nil
}

func (cr InspectionCheckRepository) getByIdBare(ctx context.Context, tx *gorm.DB, checkId string) (*model.InspectionCheck, error) {
	var check model.InspectionCheck
	if err := tx.WithContext(ctx).Model(&model.InspectionCheck{}).
		Where(model.InspectionCheck{BaseModel: model.BaseModel{ID: checkId}}).
		First(&check).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("inspection check %s not found", checkId)
		}
		return nil, err
	}

	return &check, nil
}
