// services/crud.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// EntityService is the one generic CRUD layer shared by every admin
// controller; the per-entity controllers add only listing order, filters and
// relation preloads on top of it.
type EntityService[T any] struct {
	DB *gorm.DB
}

func NewEntityService[T any](db *gorm.DB) *EntityService[T] {
	return &EntityService[T]{DB: db}
}

func (s *EntityService[T]) Create(record *T) error {
	if err := s.DB.Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// List applies the given scopes (ordering, filters, preloads) to a Find.
func (s *EntityService[T]) List(scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var records []T
	if err := s.DB.Scopes(scopes...).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (s *EntityService[T]) GetByID(id uint, scopes ...func(*gorm.DB) *gorm.DB) (*T, error) {
	var record T
	if err := s.DB.Scopes(scopes...).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return &record, nil
}

// Update writes non-zero fields of record onto the stored row. When the
// update hits nothing the row is looked up again: gone means not-found,
// still present means there was simply nothing to change.
func (s *EntityService[T]) Update(id uint, record *T) error {
	var current T
	res := s.DB.Model(&current).Where("id = ?", id).Updates(record)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := s.DB.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to re-check record: %w", err)
		}
	}
	return nil
}

func (s *EntityService[T]) Delete(id uint) error {
	var record T
	res := s.DB.Delete(&record, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
