package store

import (
	"github.com/localnerve/reviewdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// InsertReview inserts r and backfills its auto-assigned id.
func InsertReview(db *gorm.DB, r *models.Review) error {
	return db.Create(r).Error
}

// ReviewByID returns the review row or (nil, nil) when absent.
func ReviewByID(db *gorm.DB, id uint64) (*models.Review, error) {
	var r models.Review
	err := db.Where("id = ?", id).First(&r).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ReviewsByBusinessIDs fetches all reviews for the given business id set,
// ordered by date descending. The ordering is a contract the graph assembler
// depends on; ties break on id descending so insertion order within one
// millisecond stays deterministic.
func ReviewsByBusinessIDs(db *gorm.DB, businessIDs []uint64) ([]models.Review, error) {
	if len(businessIDs) == 0 {
		return nil, nil
	}
	query := db.Where("business_id IN ?", businessIDs)
	if db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("idx_review_date"))
	}
	var rows []models.Review
	if err := query.Order("date DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateReviewFields applies the given column set in a single update and
// reports the number of rows affected.
func UpdateReviewFields(db *gorm.DB, id uint64, fields map[string]interface{}) (int64, error) {
	result := db.Model(&models.Review{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteReviewByID deletes the row and reports rows affected.
func DeleteReviewByID(db *gorm.DB, id uint64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}

// DeleteReviewsByBusinessID removes every review owned by the business.
func DeleteReviewsByBusinessID(db *gorm.DB, businessID uint64) (int64, error) {
	result := db.Where("business_id = ?", businessID).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}
