package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_IsDecision(t *testing.T) {
	assert.True(t, RequestStatusAccepted.IsDecision())
	assert.True(t, RequestStatusRejected.IsDecision())
	assert.False(t, RequestStatusPending.IsDecision())
	assert.False(t, RequestStatus("accepted").IsDecision())
}

func TestExperienceLevel_IsValid(t *testing.T) {
	for _, level := range []ExperienceLevel{ExperienceNone, ExperienceMinimal, ExperienceFairly, ExperienceGoodWithCats} {
		assert.True(t, level.IsValid(), level)
	}
	assert.False(t, ExperienceLevel("Expert").IsValid())
}

func TestAdoptionRequest_IsParticipant(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()
	request := &AdoptionRequest{SenderID: sender, ReceiverID: receiver}

	assert.True(t, request.IsParticipant(sender))
	assert.True(t, request.IsParticipant(receiver))
	assert.False(t, request.IsParticipant(uuid.New()))

	var missing *AdoptionRequest
	assert.False(t, missing.IsParticipant(sender))
}

func TestOwnershipHelpers(t *testing.T) {
	owner := uuid.New()

	cat := &Cat{AddingUserID: &owner}
	assert.True(t, cat.IsAddedBy(owner))
	assert.False(t, cat.IsAddedBy(uuid.New()))
	assert.False(t, (&Cat{}).IsAddedBy(owner))

	listing := &AdoptionListing{UploaderID: owner}
	assert.True(t, listing.IsUploadedBy(owner))
	assert.False(t, listing.IsUploadedBy(uuid.New()))

	assert.Equal(t, "Sara", (&User{Username: "sara_a", FullName: "Sara"}).DisplayName())
	assert.Equal(t, "sara_a", (&User{Username: "sara_a"}).DisplayName())
}
