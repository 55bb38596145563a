package model

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionListingModel mirrors the 'adoption_listings' table. cat_id is unique: one listing per cat.
type AdoptionListingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CatID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UploaderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Vaccinated bool      `gorm:"not null;default:false"`
	Sterilized bool      `gorm:"not null;default:false"`
	IsActive   bool      `gorm:"not null;default:true"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cat *CatModel `gorm:"foreignKey:CatID"`
}

// TableName explicitly sets the table name for GORM.
func (AdoptionListingModel) TableName() string {
	return "adoption_listings"
}

// AdoptionRequestModel mirrors the 'adoption_requests' table.
// (listing_id, sender_id) is unique: one request per applicant per listing.
type AdoptionRequestModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_adoption_requests_listing_sender"`
	SenderID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_adoption_requests_listing_sender"`
	ReceiverID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	City              string    `gorm:"type:varchar(100);not null"`
	Age               int       `gorm:"not null"`
	FullName          string    `gorm:"type:varchar(255);not null"`
	ReasonForAdoption string    `gorm:"type:text;not null"`
	LivingSituation   string    `gorm:"type:text;not null"`
	ExperienceLevel   string    `gorm:"type:varchar(50);not null"`
	HasOtherPets      bool      `gorm:"not null;default:false"`
	SubmittedAt       time.Time `gorm:"not null"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdoptionRequestModel) TableName() string {
	return "adoption_requests"
}

// IncomingRequestRow is the projection returned for a receiver's inbox.
type IncomingRequestRow struct {
	AdoptionRequestModel
	SenderUsername string
	SenderFullName string
	CatName        string
}

// AcceptedContactRow is the projection returned for a sender's accepted requests.
type AcceptedContactRow struct {
	RequestID     uuid.UUID
	ListingID     uuid.UUID
	CatName       string
	ReceiverID    uuid.UUID
	ReceiverName  string
	ReceiverUser  string
	ReceiverEmail string
	ReceiverPhone string
	SubmittedAt   time.Time
}
