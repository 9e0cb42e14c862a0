package store

import (
	"context"

	"gorm.io/gorm"

	"logbook/internal/models"
)

// EntryStore wraps the log_entries table. Entries are immutable once created;
// the only mutation is deletion.
type EntryStore struct {
	db *gorm.DB
}

func NewEntryStore(db *gorm.DB) *EntryStore {
	return &EntryStore{db: db}
}

func (s *EntryStore) Create(ctx context.Context, e *models.Entry) error {
	return s.db.WithContext(ctx).Create(e).Error
}

// List returns all entries newest-first.
func (s *EntryStore) List(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.WithContext(ctx).Order("created_at desc, id desc").Find(&entries).Error
	return entries, err
}

// ListByUser returns one user's entries newest-first.
func (s *EntryStore) ListByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc, id desc").Find(&entries).Error
	return entries, err
}

// Delete removes one entry by id and reports whether it existed.
func (s *EntryStore) Delete(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Entry{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
