package services

import (
	"github.com/localnerve/reviewdb/internal/config"
	"github.com/localnerve/reviewdb/internal/graph"
	"github.com/localnerve/reviewdb/internal/models"
	"github.com/localnerve/reviewdb/internal/store"
	"github.com/localnerve/reviewdb/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AddUser registers a user. Usernames are unique case-insensitively; the
// password is stored only as a bcrypt hash at the given cost (floored at
// config.MinBcryptCost).
func AddUser(db *gorm.DB, username, password string, cost int) (types.Result, error) {
	existing, err := store.UserByUsernameFold(db, username)
	if err != nil {
		return types.Result{}, err
	}
	if existing != nil {
		return types.Failure("Username already exists", types.LevelWarn, nil), nil
	}

	if cost < config.MinBcryptCost {
		cost = config.MinBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return types.Result{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := store.InsertUser(db, &user); err != nil {
		return types.Result{}, err
	}

	// A fresh user has written nothing; the reviews list is present but empty.
	data := struct {
		models.User
		Reviews []*graph.Review `json:"reviews"`
	}{User: user, Reviews: []*graph.Review{}}
	return types.Success("User successfully added", data), nil
}

// CanLogin verifies the credentials. Unknown username and wrong password
// produce the same message so the response does not leak which usernames
// exist.
func CanLogin(db *gorm.DB, username, password string) (types.Result, error) {
	user, err := store.UserByUsernameFold(db, username)
	if err != nil {
		return types.Result{}, err
	}
	if user == nil {
		return types.Failure("Invalid username or password", types.LevelWarn, nil), nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return types.Failure("Invalid username or password", types.LevelWarn, nil), nil
	}
	return types.Success("Login successful", user), nil
}
