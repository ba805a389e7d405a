package services

import (
	"time"

	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/store"
	"github.com/localnerve/reviewdb/internal/types"
	"gorm.io/gorm"
)

// AddReviewInput carries the creation fields for a review. Ids arrive from
// clients as numbers or strings.
type AddReviewInput struct {
	BusinessID types.FlexUint64 `json:"businessId"`
	UserID     types.FlexUint64 `json:"userId"`
	Score      int              `json:"score"`
	Text       string           `json:"text"`
}

// AddReview inserts a review for an existing business. The date is assigned
// server-side at insertion, in unix milliseconds; clients never supply it.
func AddReview(db *gorm.DB, in AddReviewInput) (types.Result, error) {
	business, err := store.BusinessByID(db, in.BusinessID.Uint64())
	if err != nil {
		return types.Result{}, err
	}
	if business == nil {
		return types.Failure("Business not found", types.LevelError, nil), nil
	}

	r := models.Review{
		BusinessID: in.BusinessID.Uint64(),
		UserID:     in.UserID.Uint64(),
		Score:      in.Score,
		Date:       time.Now().UnixMilli(),
		Text:       in.Text,
	}
	if err := store.InsertReview(db, &r); err != nil {
		return types.Result{}, err
	}
	return types.Success("Review successfully added", &r), nil
}

// ReviewUpdates is the typed partial-update document for a review.
type ReviewUpdates struct {
	Score types.Optional[int]    `json:"score"`
	Text  types.Optional[string] `json:"text"`
}

func (u ReviewUpdates) diff(current *models.Review) map[string]interface{} {
	changes := make(map[string]interface{})
	diffInt(changes, "score", u.Score, current.Score)
	diffString(changes, "text", u.Text, current.Text)
	return changes
}

// EditReview applies the subset of upd that differs from the stored row. The
// review's date is immutable: it records when the review was written, not
// when it was last touched.
func EditReview(db *gorm.DB, id uint64, upd ReviewUpdates) (types.Result, error) {
	current, err := store.ReviewByID(db, id)
	if err != nil {
		return types.Result{}, err
	}
	if current == nil {
		return types.Failure("Review not found", types.LevelWarn, nil), nil
	}

	changes := upd.diff(current)
	if len(changes) == 0 {
		return types.Failure(noNewDataMessage, types.LevelWarn, nil), nil
	}

	if _, err := store.UpdateReviewFields(db, id, changes); err != nil {
		return types.Result{}, err
	}
	updated, err := store.ReviewByID(db, id)
	if err != nil {
		return types.Result{}, err
	}
	return types.Success("Review successfully updated", updated), nil
}
