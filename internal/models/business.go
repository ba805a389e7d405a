package models

// Business represents a storefront row. Purchased is a nullable tri-state
// column; it stays NULL until explicitly set and is only coerced to a strict
// boolean when a graph is assembled for a read.
type Business struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"size:200;not null;index:idx_business_identity,priority:1" json:"name"`
	Type       *string `gorm:"size:25" json:"type"`
	Address    string  `gorm:"size:50;not null;index:idx_business_identity,priority:2" json:"address"`
	City       string  `gorm:"size:100;not null;index:idx_business_identity,priority:3" json:"city"`
	State      string  `gorm:"size:25;not null;index:idx_business_identity,priority:4" json:"state"`
	PostalCode string  `gorm:"size:11;not null;index:idx_business_identity,priority:5" json:"postalCode"`
	Purchased  *bool   `json:"purchased"`
}

// TableName overrides the table name for Business
func (Business) TableName() string {
	return "businesses"
}
