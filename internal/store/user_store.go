package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logbook/internal/models"
)

// UserStore wraps the users table. Emails are the identity key and are stored
// lowercased.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user, assigning a uuid if none is set.
func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	return s.db.WithContext(ctx).Create(u).Error
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user with the given id, or nil when none exists.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users ordered by name, for the admin screen.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("name asc").Find(&users).Error
	return users, err
}

// Count returns the total number of accounts.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

// Approve flips the user's approval flag to true. Re-approving an already
// approved user is a no-op success. Returns false when the email is unknown.
func (s *UserStore) Approve(ctx context.Context, email string) (bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	if u.Approved {
		return true, nil
	}
	err = s.db.WithContext(ctx).Model(u).Updates(map[string]any{
		"approved":   true,
		"updated_at": time.Now(),
	}).Error
	return true, err
}

// Delete removes a user and, in the same transaction, all of that user's log
// entries. Returns false when the email is unknown.
func (s *UserStore) Delete(ctx context.Context, email string) (bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Entry{}, "user_id = ?", u.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", u.ID).Error
	})
	return err == nil, err
}
