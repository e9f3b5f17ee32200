package model

import "time"

// AssetEntity is the row shape of the MySQL asset store: one JSON document
// per row, keyed by user.
type AssetEntity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID  string `gorm:"type:varchar(128);index" json:"user_id"`
	Payload string `gorm:"type:json" json:"payload"`
}

// TableName pins the table name.
func (AssetEntity) TableName() string {
	return "asset_records"
}
