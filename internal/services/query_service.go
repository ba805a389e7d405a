package services

import (
	"sort"

	"github.com/localnerve/reviewdb/internal/graph"
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/store"
	"github.com/localnerve/reviewdb/internal/types"
	"gorm.io/gorm"
)

// GetBusinesses returns the fully assembled graph for every business.
func GetBusinesses(db *gorm.DB) ([]*graph.Business, error) {
	return graph.AssembleAll(db)
}

// GetBusiness returns one assembled business wrapped in a result envelope.
func GetBusiness(db *gorm.DB, id uint64) (types.Result, error) {
	business, err := graph.AssembleOne(db, id)
	if err != nil {
		return types.Result{}, err
	}
	if business == nil {
		return types.Failure("Business not found", types.LevelWarn, nil), nil
	}
	return types.Success("Business found", business), nil
}

// GetReviews returns every assembled review across all businesses, newest
// first. Per-business fetch order alone is not a global order, so the
// flattened list is re-sorted.
func GetReviews(db *gorm.DB) ([]*graph.Review, error) {
	businesses, err := graph.AssembleAll(db)
	if err != nil {
		return nil, err
	}
	reviews := make([]*graph.Review, 0)
	for _, b := range businesses {
		reviews = append(reviews, b.Reviews...)
	}
	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].Date != reviews[j].Date {
			return reviews[i].Date > reviews[j].Date
		}
		return reviews[i].ID > reviews[j].ID
	})
	return reviews, nil
}

// GetReview returns a single assembled review, with its user attached and its
// business reachable in memory.
func GetReview(db *gorm.DB, id uint64) (types.Result, error) {
	businesses, err := graph.AssembleAll(db)
	if err != nil {
		return types.Result{}, err
	}
	for _, b := range businesses {
		for _, r := range b.Reviews {
			if r.ID == id {
				return types.Success("Review found", r), nil
			}
		}
	}
	return types.Failure("Review not found", types.LevelWarn, nil), nil
}

// GetUser returns the raw user row, or (nil, nil) when absent.
func GetUser(db *gorm.DB, id uint64) (*models.User, error) {
	return store.UserByID(db, id)
}
