package store

import (
	"database/sql"

	"github.com/localnerve/reviewdb/internal/models"
	"gorm.io/gorm"
)

// InsertPhoto inserts p and backfills its auto-assigned id.
func InsertPhoto(db *gorm.DB, p *models.Photo) error {
	return db.Create(p).Error
}

// PhotosByBusinessIDs fetches all photos for the given business id set,
// ordered by position ascending. The ordering is a contract the graph
// assembler depends on.
func PhotosByBusinessIDs(db *gorm.DB, businessIDs []uint64) ([]models.Photo, error) {
	if len(businessIDs) == 0 {
		return nil, nil
	}
	var rows []models.Photo
	err := db.Where("business_id IN ?", businessIDs).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MaxPhotoPosition returns the highest position for the business, or -1 when
// the business has no photos yet. The first photo therefore lands at 0.
func MaxPhotoPosition(db *gorm.DB, businessID uint64) (int, error) {
	var max sql.NullInt64
	err := db.Model(&models.Photo{}).
		Where("business_id = ?", businessID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

// PhotoIDsByBusinessID lists the ids of every photo owned by the business,
// used to clean up the blob sink after a cascade delete.
func PhotoIDsByBusinessID(db *gorm.DB, businessID uint64) ([]uint64, error) {
	var ids []uint64
	err := db.Model(&models.Photo{}).
		Where("business_id = ?", businessID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeletePhotosByBusinessID removes every photo owned by the business.
func DeletePhotosByBusinessID(db *gorm.DB, businessID uint64) (int64, error) {
	result := db.Where("business_id = ?", businessID).Delete(&models.Photo{})
	return result.RowsAffected, result.Error
}
