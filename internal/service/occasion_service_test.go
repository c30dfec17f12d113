package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"majlis/internal/domain"
	"majlis/internal/service"
	"majlis/mocks"
)

func TestOccasionService_Create_WithAssignments(t *testing.T) {
	occasionRepo := new(mocks.MockOccasionRepo)
	svc := service.NewOccasionService(occasionRepo)

	userID := uuid.New()
	groupID := uuid.New()
	occasionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Occasion")).Return(nil)

	occasion, err := svc.Create(context.Background(), userID, service.OccasionInput{
		Title: "Shab-e-Ashura",
		Date:  time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC),
		KalamAssignments: []service.KalamAssignmentInput{
			{KalamType: "Salam", GroupID: groupID, KalamName: "Opening salam"},
			{KalamType: "Noha 2", GroupID: groupID},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, userID, occasion.UserID)
	require.Len(t, occasion.KalamAssignments, 2)
	assert.Equal(t, domain.KalamSalam, occasion.KalamAssignments[0].KalamType)
	assert.Equal(t, domain.KalamNoha2, occasion.KalamAssignments[1].KalamType)
}

func TestOccasionService_Create_InvalidKalamType(t *testing.T) {
	occasionRepo := new(mocks.MockOccasionRepo)
	svc := service.NewOccasionService(occasionRepo)

	occasion, err := svc.Create(context.Background(), uuid.New(), service.OccasionInput{
		Title: "Majlis",
		Date:  time.Now(),
		KalamAssignments: []service.KalamAssignmentInput{
			{KalamType: "Qasida", GroupID: uuid.New()},
		},
	})

	assert.Nil(t, occasion)
	assert.ErrorIs(t, err, domain.ErrInvalidKalamType)
	occasionRepo.AssertNotCalled(t, "Create")
}

func TestOccasionService_Update_ReplacesAssignments(t *testing.T) {
	occasionRepo := new(mocks.MockOccasionRepo)
	svc := service.NewOccasionService(occasionRepo)

	userID := uuid.New()
	occasionID := uuid.New()
	existing := &domain.Occasion{
		ID:     occasionID,
		UserID: userID,
		Title:  "Old title",
		KalamAssignments: []domain.KalamAssignment{
			{KalamType: domain.KalamSalam},
		},
	}

	occasionRepo.On("GetByID", mock.Anything, userID, occasionID).Return(existing, nil)
	occasionRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Occasion")).Return(nil)

	occasion, err := svc.Update(context.Background(), userID, occasionID, service.OccasionInput{
		Title: "New title",
		Date:  time.Now(),
		KalamAssignments: []service.KalamAssignmentInput{
			{KalamType: "Madeh", GroupID: uuid.New()},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", occasion.Title)
	require.Len(t, occasion.KalamAssignments, 1)
	assert.Equal(t, domain.KalamMadeh, occasion.KalamAssignments[0].KalamType)
}
