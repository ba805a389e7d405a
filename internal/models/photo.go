package models

// Photo belongs to exactly one business. Position is assigned as max+1 within
// the owning business at upload time; the first photo of a business gets 0.
// Meta carries sniffed upload metadata ({contentType, size}) as JSON.
type Photo struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID uint64 `gorm:"not null;index:idx_photo_position,priority:1" json:"businessId"`
	Position   int    `gorm:"not null;index:idx_photo_position,priority:2" json:"position"`
	Caption    string `gorm:"size:200" json:"caption"`
	Meta       JSON   `gorm:"type:json" json:"meta,omitempty"`
}

// TableName overrides the table name for Photo
func (Photo) TableName() string {
	return "photos"
}
