package models

// User is a registered reviewer. Username uniqueness is enforced
// case-insensitively at the service layer; the index here backs the lookup.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"size:40;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:100;not null" json:"passwordHash"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
