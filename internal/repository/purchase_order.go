package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/util"
	"gorm.io/gorm"
)

type PurchaseOrderRepository struct {
	*baseRepository
}

func (pr PurchaseOrderRepository) GetById(ctx context.Context, tx *gorm.DB, poId string) (*model.PurchaseOrder, error) {
	pr.logger.Debugf("Get purchase order by id: %s \n", poId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var po model.PurchaseOrder
	if err := db.WithContext(ctx).Model(&model.PurchaseOrder{}).Preload("Doors").Where(model.PurchaseOrder{
		BaseModel: model.BaseModel{ID: poId},
	}).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("purchase order %s not found", poId)
		}
		return nil, err
	}

	return &po, nil
}

func (pr PurchaseOrderRepository) List(ctx context.Context, tx *gorm.DB, search string, page, pageSize uint) ([]model.PurchaseOrder, int64, error) {
	pr.logger.Debugf("List purchase orders, search: %q, page: %d, pageSize: %d \n", search, page, pageSize)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	page, pageSize = util.NormalizePageQuery(page, pageSize)

	query := db.WithContext(ctx).Model(&model.PurchaseOrder{})
	if search != "" {
		pattern := fmt.Sprintf("%%%s%%", search)
		query = query.Where("po_number ILIKE ? OR client_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pos []model.PurchaseOrder
	if err := query.Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	return pos, total, nil
}

func (pr *PurchaseOrderRepository) Create(ctx context.Context, tx *gorm.DB, newPo model.PurchaseOrder) (*model.PurchaseOrder, error) {
	pr.logger.Debugf("Create purchase order with data: %v \n", newPo)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	po := model.PurchaseOrder{
		PoNumber:    newPo.PoNumber,
		ClientName:  newPo.ClientName,
		ClientEmail: newPo.ClientEmail,
		Description: newPo.Description,
	}
	if err := db.WithContext(ctx).Model(&model.PurchaseOrder{}).Create(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("purchase order %s already exists", newPo.PoNumber)
		}
		return nil, err
	}

	return &po, nil
}

// Delete refuses to remove a purchase order that still owns doors.
func (pr *PurchaseOrderRepository) Delete(ctx context.Context, tx *gorm.DB, poId string) error {
	pr.logger.Debugf("Delete purchase order by id: %s \n", poId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db, func(tx2 *gorm.DB) error {
		var doorCount int64
		if err := tx2.WithContext(ctx).Model(&model.Door{}).Where(model.Door{PoID: poId}).Count(&doorCount).Error; err != nil {
			return err
		}
		if doorCount > 0 {
			return apperror.InvalidState("purchase order still has %d doors", doorCount)
		}

		res := tx2.WithContext(ctx).Where(model.PurchaseOrder{
			BaseModel: model.BaseModel{ID: poId},
		}).Delete(&model.PurchaseOrder{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("purchase order %s not found", poId)
		}

		return nil
	})
}
