package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
)

// ensureExists fails with NotFound when no row of model has the given ID.
func ensureExists(tx *gorm.DB, model interface{}, resource string, id uuid.UUID) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFoundError(resource, "id", id)
	}
	return nil
}

// asNotFound converts gorm's record-not-found into the app taxonomy.
func asNotFound(err error, resource string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFoundError(resource, "id", id)
	}
	return err
}
