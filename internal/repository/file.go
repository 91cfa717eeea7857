package repository

import (
	"context"
	"errors"

	"github.com/sealteck/doortrack/internal/apperror"
	constant "github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/model"
	"gorm.io/gorm"
)

type FileRepository struct {
	*baseRepository
}

func (fr *FileRepository) Create(ctx context.Context, tx *gorm.DB, file *model.File) (*model.File, error) {
	fr.logger.Debugf("Create file record: %s \n", file.UniqueFileName)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.File{}).Create(file).Error; err != nil {
		return file, err
	}

	return file, nil
}

func (fr FileRepository) GetById(ctx context.Context, tx *gorm.DB, fileId string) (*model.File, error) {
	fr.logger.Debugf("Get file by id: %s \n", fileId)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var file model.File
	if err := db.WithContext(ctx).Model(&model.File{}).Where(&model.File{
		BaseModel: model.BaseModel{ID: fileId},
	}).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("file %s not found", fileId)
		}
		return nil, err
	}

	return &file, nil
}

// Delete removes the database row and the object in storage. The row goes
// first so a failed object removal leaves an orphan object, not a dangling
// reference.
func (fr *FileRepository) Delete(ctx context.Context, tx *gorm.DB, fileId string) error {
	fr.logger.Debugf("Delete file with fileId: %s \n", fileId)

	file, err := fr.GetById(ctx, tx, fileId)
	if err != nil {
		return err
	}

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.File{}).Where(&model.File{
		BaseModel: model.BaseModel{ID: fileId},
	}).Delete(&model.File{}).Error; err != nil {
		return err
	}

	if err := file.Delete(ctx, fr.s3); err != nil {
		fr.logger.Warnf("File row %s deleted but object removal failed: %v", fileId, err)
	}

	return nil
}
