package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/util"
	"github.com/sealteck/doortrack/pkg/doorflow"
	"gorm.io/gorm"
)

type DoorRepository struct {
	*baseRepository
	counter *CounterRepository
}

// DoorListFilter narrows the door listing. Zero values mean "no filter".
type DoorListFilter struct {
	Search              string
	PoID                string
	InspectionStatus    *doorflow.InspectionStatus
	CertificationStatus *doorflow.CertificationStatus
}

// NewDoorParams is the caller-supplied part of a door. Serial and drawing
// numbers are never accepted from outside; they are allocated here.
type NewDoorParams struct {
	PoID        string
	DoorNumber  int
	JobNumber   string
	Description string
	Pressure    int
	Size        string
}

// Create allocates the next sequence number and derives the door's identity
// inside one transaction, so a failed insert never burns an inconsistent
// serial/drawing pair and concurrent creations get strictly increasing numbers.
func (dr *DoorRepository) Create(ctx context.Context, tx *gorm.DB, params NewDoorParams) (*model.Door, error) {
	dr.logger.Debugf("Create door with data: %v \n", params)

	doorType, err := doorflow.DoorTypeForPressure(params.Pressure)
	if err != nil {
		return nil, err
	}
	sizeCode, err := doorflow.SizeCode(params.Size)
	if err != nil {
		return nil, err
	}

	db := dr.getDB(tx)
	var door model.Door

	txErr := dr.withTx(db, func(tx2 *gorm.DB) error {
		var po model.PurchaseOrder
		if err := tx2.WithContext(ctx).Model(&model.PurchaseOrder{}).Where(model.PurchaseOrder{
			BaseModel: model.BaseModel{ID: params.PoID},
		}).First(&po).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("purchase order %s not found", params.PoID)
			}
			return err
		}

		serial, err := dr.counter.NextSequence(ctx, tx2, constant.COUNTER_DOOR_SERIAL)
		if err != nil {
			return err
		}

		door = model.Door{
			DoorNumber:    params.DoorNumber,
			SerialNumber:  doorflow.SerialNumber(serial, doorType, sizeCode),
			DrawingNumber: doorflow.DrawingNumber(serial),
			JobNumber:     params.JobNumber,
			Description:   params.Description,
			Pressure:      params.Pressure,
			DoorType:      doorType,
			Size:          params.Size,
			PoID:          params.PoID,
		}
		if err := tx2.WithContext(ctx).Model(&model.Door{}).Create(&door).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("serial number %s already issued", door.SerialNumber)
			}
			return err
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &door, nil
}

func (dr DoorRepository) GetById(ctx context.Context, tx *gorm.DB, doorId string) (*model.Door, error) {
	dr.logger.Debugf("Get door by id: %s \n", doorId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var door model.Door
	if err := db.WithContext(ctx).Model(&model.Door{}).
		Preload("PurchaseOrder").
		Preload("Inspections", func(db *gorm.DB) *gorm.DB {
			return db.Order("inspection_date DESC")
		}).
		Preload("Inspections.Inspector").
		Preload("Certifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("certified_at DESC")
		}).
		Preload("Certifications.Engineer").
		Where(model.Door{BaseModel: model.BaseModel{ID: doorId}}).
		First(&door).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("door %s not found", doorId)
		}
		return nil, err
	}

	return &door, nil
}

// lockDoor loads a door with FOR UPDATE so a lifecycle decision sees a
// status pair no concurrent transaction can change underneath it. Every
// lifecycle mutation serializes on this lock. Must be called inside a
// transaction.
func lockDoor(ctx context.Context, tx *gorm.DB, doorId string) (*model.Door, error) {
	var door model.Door
	if err := tx.WithContext(ctx).Model(&model.Door{}).
		Clauses(forUpdate()).
		Where(model.Door{BaseModel: model.BaseModel{ID: doorId}}).
		First(&door).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("door %s not found", doorId)
		}
		return nil, err
	}

	return &door, nil
}

func (dr DoorRepository) List(ctx context.Context, tx *gorm.DB, filter DoorListFilter, page, pageSize uint) ([]model.Door, int64, error) {
	dr.logger.Debugf("List doors, filter: %+v, page: %d, pageSize: %d \n", filter, page, pageSize)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	page, pageSize = util.NormalizePageQuery(page, pageSize)

	query := db.WithContext(ctx).Model(&model.Door{})
	if filter.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("serial_number ILIKE ? OR drawing_number ILIKE ? OR job_number ILIKE ?", pattern, pattern, pattern)
	}
	if filter.PoID != "" {
		query = query.Where("po_id = ?", filter.PoID)
	}
	if filter.InspectionStatus != nil {
		query = query.Where("inspection_status = ?", *filter.InspectionStatus)
	}
	if filter.CertificationStatus != nil {
		query = query.Where("certification_status = ?", *filter.CertificationStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doors []model.Door
	if err := query.Preload("PurchaseOrder").
		Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&doors).Error; err != nil {
		return nil, 0, err
	}

	return doors, total, nil
}

// Update only touches the descriptive fields. Identity (serial, drawing,
// type, size, pressure) and the status pair are immutable here.
func (dr *DoorRepository) Update(ctx context.Context, tx *gorm.DB, doorId string, jobNumber, description string) error {
	dr.logger.Debugf("Update door %s \n", doorId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Door{}).
		Where(model.Door{BaseModel: model.BaseModel{ID: doorId}}).
		Select("job_number", "description").
		Updates(model.Door{JobNumber: jobNumber, Description: description})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("door %s not found", doorId)
	}

	return nil
}

// Delete removes a door and its inspection history. Certified doors are
// protected; their certificate must be deleted first.
func (dr *DoorRepository) Delete(ctx context.Context, tx *gorm.DB, doorId string) error {
	dr.logger.Debugf("Delete door by id: %s \n", doorId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return dr.withTx(db, func(tx2 *gorm.DB) error {
		door, err := lockDoor(ctx, tx2, doorId)
		if err != nil {
			return err
		}
		if door.CertificationStatus == doorflow.CertificationCertified {
			return apperror.InvalidState("door %s is certified, delete the certification first", door.SerialNumber)
		}

		return tx2.WithContext(ctx).Where(model.Door{
			BaseModel: model.BaseModel{ID: doorId},
		}).Delete(&model.Door{}).Error
	})
}

// applyDoorState persists a lifecycle transition computed by doorflow.
// rejectionReason: nil leaves the stored reason alone, pointer to "" clears
// it, anything else sets it. Runs inside the caller's transaction.
func applyDoorState(ctx context.Context, tx *gorm.DB, doorId string, state doorflow.DoorState, rejectionReason *string) error {
	updates := map[string]any{
		"inspection_status":    state.Inspection,
		"certification_status": state.Certification,
	}
	if rejectionReason != nil {
		if *rejectionReason == "" {
			updates["rejection_reason"] = nil
		} else {
			updates["rejection_reason"] = *rejectionReason
		}
	}

	res := tx.WithContext(ctx).Model(&model.Door{}).
		Where(model.Door{BaseModel: model.BaseModel{ID: doorId}}).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("door %s not found", doorId)
	}

	return nil
}
