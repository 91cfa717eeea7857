package repository

import (
	"context"
	"errors"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"gorm.io/gorm"
)

type CounterRepository struct {
	*baseRepository
}

// NextSequence atomically increments the named counter and returns the new
// value. The single UPDATE ... RETURNING statement means two concurrent door
// creations can never be handed the same number, no matter how they interleave.
func (cr CounterRepository) NextSequence(ctx context.Context, tx *gorm.DB, name string) (int, error) {
	cr.logger.Debugf("Next sequence for counter: %s \n", name)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var value int
	err := db.WithContext(ctx).Raw(
		"UPDATE counters SET value = value + 1, updated_at = CURRENT_TIMESTAMP WHERE name = ? RETURNING value",
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, apperror.Dependency(gorm.ErrRecordNotFound, "counter %q is not seeded", name)
	}

	return value, nil
}

// Seed creates the counter at the given value if it does not exist yet.
// Called from the migration binary; existing counters are left untouched.
func (cr CounterRepository) Seed(ctx context.Context, tx *gorm.DB, name string, value int) error {
	cr.logger.Debugf("Seed counter %s at %d \n", name, value)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var existing model.Counter
	err := db.WithContext(ctx).Model(&model.Counter{}).Where(model.Counter{Name: name}).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.WithContext(ctx).Model(&model.Counter{}).Create(&model.Counter{
		Name:  name,
		Value: value,
	}).Error
}

// Get returns the counter's current value without incrementing it.
func (cr CounterRepository) Get(ctx context.Context, tx *gorm.DB, name string) (*model.Counter, error) {
	cr.logger.Debugf("Get counter: %s \n", name)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var counter model.Counter
	if err := db.WithContext(ctx).Model(&model.Counter{}).Where(model.Counter{Name: name}).First(&counter).Error; err != nil {
		return nil, err
	}

	return &counter, nil
}
