package services_test

import (
	"testing"

	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/services"
	"github.com/localnerve/reviewdb/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// TestAddUser tests registration, hashing and the case-insensitive duplicate
// rejection
func TestAddUser(t *testing.T) {
	db := setupTestDB(t)

	result, err := services.AddUser(db, "Harriet", "correct horse battery", 8)
	if err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got %+v", result.Message)
	}
	data := asMap(t, result.Data)
	reviews, ok := data["reviews"].([]interface{})
	if !ok || len(reviews) != 0 {
		t.Errorf("Expected an empty reviews list, got %v", data["reviews"])
	}

	var stored models.User
	db.Where("username = ?", "Harriet").First(&stored)
	if stored.PasswordHash == "correct horse battery" {
		t.Fatal("Password must never be stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse battery")) != nil {
		t.Error("Stored hash does not verify against the password")
	}

	// Different case, same username.
	result, err = services.AddUser(db, "hArRiEt", "another password", 8)
	if err != nil {
		t.Fatalf("Failed on duplicate: %v", err)
	}
	if result.Success || result.Message.Text != "Username already exists" {
		t.Errorf("Expected duplicate rejection, got %+v", result.Message)
	}
	if result.Message.Level != types.LevelWarn {
		t.Errorf("Expected warn level, got %s", result.Message.Level)
	}
}

// TestCanLogin tests credential verification with one shared failure message
func TestCanLogin(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.AddUser(db, "ivy", "a long enough password", 8); err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}

	result, err := services.CanLogin(db, "ivy", "a long enough password")
	if err != nil {
		t.Fatalf("Failed to login: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected login to succeed, got %+v", result.Message)
	}
	user := result.Data.(*models.User)
	if user.Username != "ivy" {
		t.Errorf("Expected user data, got %+v", user)
	}

	wrongPassword, err := services.CanLogin(db, "ivy", "not the password")
	if err != nil {
		t.Fatalf("Failed on wrong password: %v", err)
	}
	unknownUser, err := services.CanLogin(db, "nobody", "a long enough password")
	if err != nil {
		t.Fatalf("Failed on unknown user: %v", err)
	}

	// Both failures must be indistinguishable.
	if wrongPassword.Success || unknownUser.Success {
		t.Fatal("Expected both logins to fail")
	}
	if wrongPassword.Message.Text != unknownUser.Message.Text {
		t.Errorf("Expected identical failure messages, got %q vs %q",
			wrongPassword.Message.Text, unknownUser.Message.Text)
	}
}
