package store

import (
	"github.com/localnerve/reviewdb/internal/models"
	"gorm.io/gorm"
)

// InsertUser inserts u and backfills its auto-assigned id.
func InsertUser(db *gorm.DB, u *models.User) error {
	return db.Create(u).Error
}

// UserByID returns the user row or (nil, nil) when absent.
func UserByID(db *gorm.DB, id uint64) (*models.User, error) {
	var u models.User
	err := db.Where("id = ?", id).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserByUsernameFold looks a user up case-insensitively. Returns (nil, nil)
// when absent.
func UserByUsernameFold(db *gorm.DB, username string) (*models.User, error) {
	var u models.User
	err := db.Where("LOWER(username) = LOWER(?)", username).First(&u).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UsersByIDs fetches only the referenced user rows, not the whole table.
func UsersByIDs(db *gorm.DB, ids []uint64) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.User
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
