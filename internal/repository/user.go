package repository

import (
	"context"
	"errors"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{
		BaseModel: model.BaseModel{ID: userId},
	}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s \n", email)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Email: email}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

// ListByRole returns every user holding the given role. Used to resolve
// notification recipients for lifecycle events.
func (ur UserRepository) ListByRole(ctx context.Context, tx *gorm.DB, role constant.UserRole) ([]model.User, error) {
	ur.logger.Debugf("List users by role: %s \n", role)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var users []model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Role: role}).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User) error {
	ur.logger.Debugf("Create user with email: %s role: %s \n", newUser.Email, newUser.Role)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	role := newUser.Role
	if !role.Valid() {
		role = constant.RoleClient
	}

	if err := db.WithContext(ctx).Model(&model.User{}).Create(&model.User{
		Email:        newUser.Email,
		FirstName:    newUser.FirstName,
		LastName:     newUser.LastName,
		Role:         role,
		PasswordHash: newUser.PasswordHash,
		ProfileURL:   newUser.ProfileURL,
	}).Error; err != nil {
		return err
	}

	return nil
}

func (ur *UserRepository) CheckDupAndCreate(ctx context.Context, tx *gorm.DB, newUser model.User) error {
	ur.logger.Debugf("Check duplicate and create user with email: %s (Transaction) \n", newUser.Email)

	db := ur.getDB(tx)
	txErr := ur.withTx(db, func(tx2 *gorm.DB) error {
		_, err := ur.GetByEmail(ctx, tx2, newUser.Email)
		if err == nil {
			return apperror.Conflict("user with email %s already exists", newUser.Email)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return ur.Create(ctx, tx2, newUser)
	})

	return txErr
}

func (ur *UserRepository) UpdateRole(ctx context.Context, tx *gorm.DB, userId string, role constant.UserRole) error {
	ur.logger.Debugf("Update role of user %s to %s \n", userId, role)

	if !role.Valid() {
		return apperror.Validation("unknown role %q", role)
	}

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.User{}).
		Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("user %s not found", userId)
	}

	return nil
}
