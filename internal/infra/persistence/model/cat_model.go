package model

import (
	"time"

	"github.com/google/uuid"
)

// CatModel mirrors the 'cats' table.
type CatModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Gender       string     `gorm:"type:varchar(10);not null;default:'UNKNOWN'"`
	Age          *int       `gorm:"type:integer"`
	Notes        string     `gorm:"type:text"`
	ImageURL     string     `gorm:"type:text"`
	AddingUserID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AddingUser *UserModel `gorm:"foreignKey:AddingUserID"`
}

// TableName explicitly sets the table name for GORM.
func (CatModel) TableName() string {
	return "cats"
}

// CatLocationModel mirrors the 'cat_locations' table. cat_id is unique: one pin per cat.
type CatLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CatID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Condition string    `gorm:"type:varchar(20);not null;default:'UNKNOWN'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatLocationModel) TableName() string {
	return "cat_locations"
}

// PinRow is the projection returned by the pin feed join.
type PinRow struct {
	CatLocationModel
	CatName            string
	AddingUserID       *uuid.UUID
	AddingUserUsername *string
}
