package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"majlis/internal/domain"
	"majlis/internal/service"
	"majlis/mocks"
)

func TestAttendanceService_Mark_Success(t *testing.T) {
	attendanceRepo := new(mocks.MockAttendanceRepo)
	memberRepo := new(mocks.MockMemberRepo)
	occasionRepo := new(mocks.MockOccasionRepo)
	svc := service.NewAttendanceService(attendanceRepo, memberRepo, occasionRepo)

	userID := uuid.New()
	memberID := uuid.New()
	occasionID := uuid.New()

	memberRepo.On("GetByID", mock.Anything, userID, memberID).Return(&domain.Member{ID: memberID}, nil)
	occasionRepo.On("GetByID", mock.Anything, userID, occasionID).Return(&domain.Occasion{ID: occasionID}, nil)
	attendanceRepo.On("Mark", mock.Anything, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)

	record, err := svc.Mark(context.Background(), userID, service.MarkAttendanceInput{
		MemberID:   memberID,
		OccasionID: occasionID,
		IsPresent:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, memberID, record.MemberID)
	assert.Equal(t, occasionID, record.OccasionID)
	assert.True(t, record.IsPresent)
	attendanceRepo.AssertExpectations(t)
}

func TestAttendanceService_Mark_MemberNotOwned(t *testing.T) {
	attendanceRepo := new(mocks.MockAttendanceRepo)
	memberRepo := new(mocks.MockMemberRepo)
	occasionRepo := new(mocks.MockOccasionRepo)
	svc := service.NewAttendanceService(attendanceRepo, memberRepo, occasionRepo)

	userID := uuid.New()
	memberID := uuid.New()

	memberRepo.On("GetByID", mock.Anything, userID, memberID).Return(nil, domain.ErrNotFound)

	record, err := svc.Mark(context.Background(), userID, service.MarkAttendanceInput{
		MemberID:   memberID,
		OccasionID: uuid.New(),
		IsPresent:  true,
	})

	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	attendanceRepo.AssertNotCalled(t, "Mark")
}

func TestAttendanceService_Mark_OccasionNotOwned(t *testing.T) {
	attendanceRepo := new(mocks.MockAttendanceRepo)
	memberRepo := new(mocks.MockMemberRepo)
	occasionRepo := new(mocks.MockOccasionRepo)
	svc := service.NewAttendanceService(attendanceRepo, memberRepo, occasionRepo)

	userID := uuid.New()
	memberID := uuid.New()
	occasionID := uuid.New()

	memberRepo.On("GetByID", mock.Anything, userID, memberID).Return(&domain.Member{ID: memberID}, nil)
	occasionRepo.On("GetByID", mock.Anything, userID, occasionID).Return(nil, domain.ErrNotFound)

	record, err := svc.Mark(context.Background(), userID, service.MarkAttendanceInput{
		MemberID:   memberID,
		OccasionID: occasionID,
		IsPresent:  false,
	})

	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	attendanceRepo.AssertNotCalled(t, "Mark")
}

func TestAttendanceService_MemberStats(t *testing.T) {
	attendanceRepo := new(mocks.MockAttendanceRepo)
	memberRepo := new(mocks.MockMemberRepo)
	occasionRepo := new(mocks.MockOccasionRepo)
	svc := service.NewAttendanceService(attendanceRepo, memberRepo, occasionRepo)

	userID := uuid.New()
	memberID := uuid.New()

	memberRepo.On("GetByID", mock.Anything, userID, memberID).Return(&domain.Member{ID: memberID}, nil)
	attendanceRepo.On("MemberStats", mock.Anything, userID, memberID).Return(&domain.MemberAttendanceStats{
		Total:      8,
		Attended:   5,
		Percentage: 63,
	}, nil)

	stats, err := svc.MemberStats(context.Background(), userID, memberID)

	require.NoError(t, err)
	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 5, stats.Attended)
	assert.Equal(t, 63, stats.Percentage)
}
