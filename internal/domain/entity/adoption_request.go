package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the decision state of an adoption request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusAccepted RequestStatus = "Accepted"
	RequestStatusRejected RequestStatus = "Rejected"
)

// IsValid reports whether s is a known status.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether s is a status the receiver may apply.
func (s RequestStatus) IsDecision() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// ExperienceLevel is the applicant's self-reported experience with cats.
type ExperienceLevel string

const (
	ExperienceNone         ExperienceLevel = "None"
	ExperienceMinimal      ExperienceLevel = "Minimal"
	ExperienceFairly       ExperienceLevel = "Fairly experienced"
	ExperienceGoodWithCats ExperienceLevel = "Good with cats"
)

// IsValid reports whether e is one of the recognized levels.
func (e ExperienceLevel) IsValid() bool {
	switch e {
	case ExperienceNone, ExperienceMinimal, ExperienceFairly, ExperienceGoodWithCats:
		return true
	default:
		return false
	}
}

// AdoptionApplication is the applicant profile submitted with a request.
type AdoptionApplication struct {
	City              string          `json:"city"`
	Age               int             `json:"age"`
	FullName          string          `json:"full_name"`
	ReasonForAdoption string          `json:"reason_for_adoption"`
	LivingSituation   string          `json:"living_situation"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	HasOtherPets      bool            `json:"has_other_pets"`
}

// AdoptionRequest is an application against a listing.
type AdoptionRequest struct {
	ID          uuid.UUID     `json:"id"`
	ListingID   uuid.UUID     `json:"listing_id"`
	SenderID    uuid.UUID     `json:"sender_id"`
	ReceiverID  uuid.UUID     `json:"receiver_id"`
	Status      RequestStatus `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	AdoptionApplication
}

// IsParticipant reports whether userID is the sender or receiver.
func (r *AdoptionRequest) IsParticipant(userID uuid.UUID) bool {
	return r != nil && (r.SenderID == userID || r.ReceiverID == userID)
}

// IncomingRequestView is a request shown to its receiver together with the sender's name.
type IncomingRequestView struct {
	AdoptionRequest
	SenderName string `json:"sender_name"`
	CatName    string `json:"cat_name"`
}

// AcceptedRequestContact discloses the receiver's contact details to an accepted applicant.
type AcceptedRequestContact struct {
	RequestID     uuid.UUID `json:"request_id"`
	ListingID     uuid.UUID `json:"listing_id"`
	CatName       string    `json:"cat_name"`
	ReceiverID    uuid.UUID `json:"receiver_id"`
	ReceiverName  string    `json:"receiver_name"`
	ReceiverEmail string    `json:"receiver_email"`
	ReceiverPhone string    `json:"receiver_phone"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
