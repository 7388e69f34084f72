package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
)

// TenantRecord is implemented by every model scoped to a business profile.
type TenantRecord interface {
	OwnerID() string
}

// fetchOwned loads a record by id and verifies it belongs to the given
// profile. Every update and delete goes through this check, for every
// entity.
func fetchOwned[T TenantRecord](db *gorm.DB, id, profileID string, notFound *apperrors.AppError) (*T, error) {
	var rec T
	if err := db.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if rec.OwnerID() != profileID {
		return nil, apperrors.ErrForbidden
	}
	return &rec, nil
}

// listByProfile returns every row scoped to the profile, with optional
// query modifiers (filters, preloads, ordering).
func listByProfile[T any](db *gorm.DB, profileID string, mods ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	q := db.Where("business_profile_id = ?", profileID)
	for _, m := range mods {
		q = m(q)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// deleteOwned verifies ownership, deletes the record and returns it.
func deleteOwned[T TenantRecord](db *gorm.DB, id, profileID string, notFound *apperrors.AppError) (*T, error) {
	rec, err := fetchOwned[T](db, id, profileID, notFound)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rec, nil
}
