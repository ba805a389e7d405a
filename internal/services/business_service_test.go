package services_test

import (
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Business{},
		&models.Review{},
		&models.User{},
		&models.Photo{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

// asMap round-trips result data through JSON for field-level assertions.
func asMap(t *testing.T, data interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Failed to marshal data: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
	return m
}

var tavernaInput = services.AddBusinessInput{
	Name:       "Taverna Luna",
	Type:       strPtr("restaurant"),
	Address:    "44 Harbor Way",
	City:       "Porthaven",
	State:      "ME",
	PostalCode: "04101",
}

// TestAddBusiness tests creation and the duplicate-identity rejection
func TestAddBusiness(t *testing.T) {
	db := setupTestDB(t)

	result, err := services.AddBusiness(db, tavernaInput)
	if err != nil {
		t.Fatalf("Failed to add business: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got %+v", result.Message)
	}
	data := asMap(t, result.Data)
	if data["purchased"] != false {
		t.Errorf("Expected purchased=false on a fresh business, got %v", data["purchased"])
	}
	firstID := data["id"]

	// Same five-field identity: rejected, existing row returned.
	result, err = services.AddBusiness(db, tavernaInput)
	if err != nil {
		t.Fatalf("Failed on duplicate add: %v", err)
	}
	if result.Success {
		t.Fatal("Expected duplicate to be rejected")
	}
	if result.Message.Level != types.LevelWarn {
		t.Errorf("Expected warn level, got %s", result.Message.Level)
	}
	data = asMap(t, result.Data)
	if data["id"] != firstID {
		t.Errorf("Expected the existing row in data, got id %v (want %v)", data["id"], firstID)
	}

	// A single differing identity field makes it a new business.
	differentCity := tavernaInput
	differentCity.City = "Easthaven"
	result, err = services.AddBusiness(db, differentCity)
	if err != nil {
		t.Fatalf("Failed to add near-duplicate: %v", err)
	}
	if !result.Success {
		t.Errorf("Expected near-duplicate to be accepted, got %+v", result.Message)
	}

	var count int64
	db.Model(&models.Business{}).Count(&count)
	if count != 2 {
		t.Errorf("Expected 2 businesses, got %d", count)
	}
}

// TestEditBusinessDiff tests that only changed fields are written and an
// empty diff is rejected
func TestEditBusinessDiff(t *testing.T) {
	db := setupTestDB(t)

	result, _ := services.AddBusiness(db, tavernaInput)
	id := uint64(asMap(t, result.Data)["id"].(float64))

	// Same values everywhere: empty diff, no write, rejection.
	raw := []byte(`{"name":"Taverna Luna","city":"Porthaven"}`)
	result, err := services.EditEntity(db, services.KindBusiness, id, raw)
	if err != nil {
		t.Fatalf("Failed to edit: %v", err)
	}
	if result.Success {
		t.Error("Expected an empty diff to be rejected")
	}
	if result.Message.Text != "None of the provided updates contained new data" {
		t.Errorf("Unexpected message: %s", result.Message.Text)
	}

	// One changed field plus one unchanged: applied.
	raw = []byte(`{"name":"Taverna Luna","state":"NH"}`)
	result, err = services.EditEntity(db, services.KindBusiness, id, raw)
	if err != nil {
		t.Fatalf("Failed to edit: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected edit to succeed, got %+v", result.Message)
	}

	var stored models.Business
	db.First(&stored, id)
	if stored.State != "NH" {
		t.Errorf("Expected state NH, got %s", stored.State)
	}
	if stored.Name != "Taverna Luna" {
		t.Errorf("Name must be untouched, got %s", stored.Name)
	}
}

// TestEditBusinessNullType tests clearing the nullable type field
func TestEditBusinessNullType(t *testing.T) {
	db := setupTestDB(t)

	result, _ := services.AddBusiness(db, tavernaInput)
	id := uint64(asMap(t, result.Data)["id"].(float64))

	result, err := services.EditEntity(db, services.KindBusiness, id, []byte(`{"type":null}`))
	if err != nil {
		t.Fatalf("Failed to edit: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected null type to be a real change, got %+v", result.Message)
	}

	var stored models.Business
	db.First(&stored, id)
	if stored.Type != nil {
		t.Errorf("Expected type cleared, got %v", *stored.Type)
	}

	// Null again: no longer a change.
	result, err = services.EditEntity(db, services.KindBusiness, id, []byte(`{"type":null}`))
	if err != nil {
		t.Fatalf("Failed to edit: %v", err)
	}
	if result.Success {
		t.Error("Expected null-on-null to be an empty diff")
	}
}

// TestEditEntityDispatch tests not-found and unknown kind handling
func TestEditEntityDispatch(t *testing.T) {
	db := setupTestDB(t)

	result, err := services.EditEntity(db, services.KindBusiness, 777, []byte(`{"city":"Nowhere"}`))
	if err != nil {
		t.Fatalf("Failed to edit: %v", err)
	}
	if result.Success || result.Message.Text != "Business not found" {
		t.Errorf("Expected business not found, got %+v", result.Message)
	}

	result, err = services.EditEntity(db, services.EntityKind("photo"), 1, []byte(`{}`))
	if err != nil {
		t.Fatalf("Failed on unknown kind: %v", err)
	}
	if result.Success || result.Message.Level != types.LevelError {
		t.Errorf("Expected error-level rejection for unknown kind, got %+v", result.Message)
	}
}
