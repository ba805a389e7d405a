package models

// Review belongs to exactly one business and weakly references its author.
// UserID may point at a user that no longer exists; assembly substitutes a
// null tombstone in that case. Date is a unix-millisecond creation stamp and
// is immutable after insert.
type Review struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID uint64 `gorm:"not null;index" json:"businessId"`
	UserID     uint64 `gorm:"index" json:"userId"`
	Score      int    `gorm:"not null" json:"score"`
	Date       int64  `gorm:"not null;index:idx_review_date" json:"date"`
	Text       string `gorm:"size:300" json:"text"`
}

// TableName overrides the table name for Review
func (Review) TableName() string {
	return "reviews"
}
