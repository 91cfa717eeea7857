package repository

import (
	"context"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"gorm.io/gorm"
)

type InspectionPointRepository struct {
	*baseRepository
}

func (pr InspectionPointRepository) List(ctx context.Context, tx *gorm.DB, activeOnly bool) ([]model.InspectionPoint, error) {
	pr.logger.Debugf("List inspection points, activeOnly: %t \n", activeOnly)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.InspectionPoint{})
	if activeOnly {
		query = query.Where(model.InspectionPoint{Active: true})
	}

	var points []model.InspectionPoint
	if err := query.Order("order_index ASC").Find(&points).Error; err != nil {
		return nil, err
	}

	return points, nil
}

func (pr *InspectionPointRepository) Create(ctx context.Context, tx *gorm.DB, newPoint model.InspectionPoint) (*model.InspectionPoint, error) {
	pr.logger.Debugf("Create inspection point with data: %v \n", newPoint)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	point := model.InspectionPoint{
		Name:        newPoint.Name,
		Description: newPoint.Description,
		OrderIndex:  newPoint.OrderIndex,
		Active:      true,
	}
	if err := db.WithContext(ctx).Model(&model.InspectionPoint{}).Create(&point).Error; err != nil {
		return nil, err
	}

	return &point, nil
}

func (pr *InspectionPointRepository) Update(ctx context.Context, tx *gorm.DB, pointId string, updated model.InspectionPoint) (*model.InspectionPoint, error) {
	pr.logger.Debugf("Update inspection point: %s \n", pointId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.InspectionPoint{}).
		Where(model.InspectionPoint{BaseModel: model.BaseModel{ID: pointId}}).
		Select("name", "description", "order_index", "active").
		Updates(map[string]any{
			"name":        updated.Name,
			"description": updated.Description,
			"order_index": updated.OrderIndex,
			"active":      updated.Active,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("inspection point %s not found", pointId)
	}

	var point model.InspectionPoint
	if err := db.WithContext(ctx).Model(&model.InspectionPoint{}).
		Where(model.InspectionPoint{BaseModel: model.BaseModel{ID: pointId}}).
		First(&point).Error; err != nil {
		return nil, err
	}

	return &point, nil
}

// Deactivate retires a point instead of deleting it: existing checks keep
// their reference, new inspections stop picking it up.
func (pr *InspectionPointRepository) Deactivate(ctx context.Context, tx *gorm.DB, pointId string) error {
	pr.logger.Debugf("Deactivate inspection point: %s \n", pointId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.InspectionPoint{}).
		Where(model.InspectionPoint{BaseModel: model.BaseModel{ID: pointId}}).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("inspection point %s not found", pointId)
	}

	return nil
}

// Delete hard-removes a point that has never been used in an inspection.
// Points with history can only be deactivated.
func (pr *InspectionPointRepository) Delete(ctx context.Context, tx *gorm.DB, pointId string) error {
	pr.logger.Debugf("Delete inspection point: %s \n", pointId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		var used int64
		if err := tx2.WithContext(ctx).Model(&model.InspectionCheck{}).
			Where(model.InspectionCheck{InspectionPointID: pointId}).
			Count(&used).Error; err != nil {
			return err
		}
		if used > 0 {
			return apperror.InvalidState("inspection point %s is referenced by %d checks, deactivate it instead", pointId, used)
		}

		res := tx2.WithContext(ctx).Where(model.InspectionPoint{
			BaseModel: model.BaseModel{ID: pointId},
		}).Delete(&model.InspectionPoint{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("inspection point %s not found", pointId)
		}

		return nil
	})
}
