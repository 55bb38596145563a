package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityType tags an activity log entry at write time.
type ActivityType string

const (
	ActivityConditionUrgent  ActivityType = "condition_change_urgent"
	ActivityConditionAtVet   ActivityType = "condition_change_at_vet"
	ActivityConditionAdopted ActivityType = "condition_change_adopted"
	ActivityConditionPassed  ActivityType = "condition_change_passed"
	ActivityContribution     ActivityType = "contribution"
)

// ActivityTypeForCondition returns the tag recorded for a condition change.
func ActivityTypeForCondition(c Condition) ActivityType {
	slug := strings.ToLower(strings.ReplaceAll(string(c), " ", "_"))

	return ActivityType("condition_change_" + slug)
}

// ActivityLog is an append-only history entry for a cat.
type ActivityLog struct {
	ID           uuid.UUID    `json:"id"`
	CatID        uuid.UUID    `json:"cat_id"`
	UserID       *uuid.UUID   `json:"user_id,omitempty"`
	ActivityType ActivityType `json:"activity_type"`
	Description  string       `json:"activity_description"`
	ActivityTime time.Time    `json:"activity_time"`
}

// NewActivityLog builds an entry stamped with the current time. The ID is assigned on insert.
func NewActivityLog(catID uuid.UUID, userID *uuid.UUID, activityType ActivityType, description string) *ActivityLog {
	return &ActivityLog{
		CatID:        catID,
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		ActivityTime: time.Now(),
	}
}
