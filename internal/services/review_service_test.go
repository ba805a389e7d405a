package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/types"
)

// TestAddReview tests creation with a server-assigned date and the missing
// business rejection
func TestAddReview(t *testing.T) {
	db := setupTestDB(t)

	business := models.Business{Name: "Bagel Barn", Address: "3 Mill St", City: "Dover", State: "NH", PostalCode: "03820"}
	db.Create(&business)
	user := models.User{Username: "eli", PasswordHash: "x"}
	db.Create(&user)

	before := time.Now().UnixMilli()
	var in services.AddReviewInput
	if err := json.Unmarshal([]byte(`{"businessId":"1","userId":1,"score":9,"text":"Best bagels on the seacoast, the lines move fast too."}`), &in); err != nil {
		t.Fatalf("Failed to unmarshal input: %v", err)
	}

	result, err := services.AddReview(db, in)
	if err != nil {
		t.Fatalf("Failed to add review: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got %+v", result.Message)
	}

	review := result.Data.(*models.Review)
	if review.Date < before || review.Date > time.Now().UnixMilli() {
		t.Errorf("Expected a server-assigned date, got %d", review.Date)
	}
	if review.BusinessID != business.ID {
		t.Errorf("Expected string businessId to decode, got %d", review.BusinessID)
	}

	// Missing business: error level, nothing written.
	in.BusinessID = types.FlexUint64(555)
	result, err = services.AddReview(db, in)
	if err != nil {
		t.Fatalf("Failed on missing business: %v", err)
	}
	if result.Success || result.Message.Level != types.LevelError {
		t.Errorf("Expected error-level rejection, got %+v", result.Message)
	}
	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 review, got %d", count)
	}
}

// TestGetReviewsOrdering tests the global newest-first ordering across
// businesses
func TestGetReviewsOrdering(t *testing.T) {
	db := setupTestDB(t)

	b1 := models.Business{Name: "First Stop", Address: "1 A St", City: "Town", State: "TS", PostalCode: "00001"}
	b2 := models.Business{Name: "Second Stop", Address: "2 B St", City: "Town", State: "TS", PostalCode: "00002"}
	db.Create(&b1)
	db.Create(&b2)
	user := models.User{Username: "fran", PasswordHash: "x"}
	db.Create(&user)

	// Interleave dates across the two businesses.
	db.Create(&models.Review{BusinessID: b1.ID, UserID: user.ID, Score: 5, Date: 1000, Text: "The oldest review of the whole bunch lives right here."})
	db.Create(&models.Review{BusinessID: b2.ID, UserID: user.ID, Score: 6, Date: 3000, Text: "The newest review of the whole bunch lives right here."})
	db.Create(&models.Review{BusinessID: b1.ID, UserID: user.ID, Score: 7, Date: 2000, Text: "The middle review of the whole bunch lives right here."})

	reviews, err := services.GetReviews(db)
	if err != nil {
		t.Fatalf("Failed to get reviews: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("Expected 3 reviews, got %d", len(reviews))
	}
	if reviews[0].Date != 3000 || reviews[1].Date != 2000 || reviews[2].Date != 1000 {
		t.Errorf("Expected global newest-first order, got %d %d %d",
			reviews[0].Date, reviews[1].Date, reviews[2].Date)
	}
	if reviews[0].Business == nil || reviews[0].Business.ID != b2.ID {
		t.Error("Expected the newest review to link back to its business")
	}
}

// TestEditReview tests the partial update and date immutability
func TestEditReview(t *testing.T) {
	db := setupTestDB(t)

	business := models.Business{Name: "Edit Cafe", Address: "8 C St", City: "Town", State: "TS", PostalCode: "00003"}
	db.Create(&business)
	review := models.Review{BusinessID: business.ID, UserID: 1, Score: 4, Date: 12345, Text: "A perfectly adequate lunch, nothing more and nothing less."}
	db.Create(&review)

	result, err := services.EditEntity(db, services.KindReview, review.ID, []byte(`{"score":9}`))
	if err != nil {
		t.Fatalf("Failed to edit review: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got %+v", result.Message)
	}

	var stored models.Review
	db.First(&stored, review.ID)
	if stored.Score != 9 {
		t.Errorf("Expected score 9, got %d", stored.Score)
	}
	if stored.Date != 12345 {
		t.Errorf("Expected date untouched, got %d", stored.Date)
	}

	// Same score again: empty diff.
	result, err = services.EditEntity(db, services.KindReview, review.ID, []byte(`{"score":9}`))
	if err != nil {
		t.Fatalf("Failed to edit review: %v", err)
	}
	if result.Success {
		t.Error("Expected an empty diff to be rejected")
	}
}

// TestDeleteReview tests single deletion and the not-found warning
func TestDeleteReview(t *testing.T) {
	db := setupTestDB(t)

	business := models.Business{Name: "Del Cafe", Address: "9 D St", City: "Town", State: "TS", PostalCode: "00004"}
	db.Create(&business)
	user := models.User{Username: "gus", PasswordHash: "x"}
	db.Create(&user)
	review := models.Review{BusinessID: business.ID, UserID: user.ID, Score: 2, Date: 1, Text: "Deleting this one shortly, it never should have posted."}
	db.Create(&review)

	result, err := services.DeleteReview(db, review.ID)
	if err != nil {
		t.Fatalf("Failed to delete review: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got %+v", result.Message)
	}

	// The author survives the deletion.
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount != 1 {
		t.Errorf("Expected the author to survive, got %d users", userCount)
	}

	result, err = services.DeleteReview(db, review.ID)
	if err != nil {
		t.Fatalf("Failed on repeat delete: %v", err)
	}
	if result.Success || result.Message.Level != types.LevelWarn {
		t.Errorf("Expected warn-level not found, got %+v", result.Message)
	}
}
