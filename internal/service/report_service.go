package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"majlis/internal/port"
	"majlis/internal/xlsxreport"
)

// ReportService exports attendance data as downloadable workbooks.
type ReportService interface {
	// WriteAttendanceRegister streams an xlsx register of all members
	// against all occasions onto w and returns a download filename.
	WriteAttendanceRegister(ctx context.Context, userID uuid.UUID, w io.Writer) (string, error)
}

type reportService struct {
	memberRepo     port.MemberRepository
	occasionRepo   port.OccasionRepository
	attendanceRepo port.AttendanceRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	memberRepo port.MemberRepository,
	occasionRepo port.OccasionRepository,
	attendanceRepo port.AttendanceRepository,
) ReportService {
	return &reportService{
		memberRepo:     memberRepo,
		occasionRepo:   occasionRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *reportService) WriteAttendanceRegister(ctx context.Context, userID uuid.UUID, w io.Writer) (string, error) {
	members, err := s.memberRepo.List(ctx, userID)
	if err != nil {
		return "", err
	}
	occasions, err := s.occasionRepo.List(ctx, userID)
	if err != nil {
		return "", err
	}
	records, err := s.attendanceRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	// Occasions come newest first; the register reads left to right.
	for i, j := 0, len(occasions)-1; i < j; i, j = i+1, j-1 {
		occasions[i], occasions[j] = occasions[j], occasions[i]
	}

	marks := make(map[uuid.UUID]map[uuid.UUID]bool, len(members))
	for _, r := range records {
		if !r.IsPresent {
			continue
		}
		if marks[r.MemberID] == nil {
			marks[r.MemberID] = make(map[uuid.UUID]bool)
		}
		marks[r.MemberID][r.OccasionID] = true
	}

	reg := xlsxreport.Register{
		Members:   members,
		Occasions: occasions,
		Marks:     marks,
	}
	if err := xlsxreport.WriteRegister(w, reg); err != nil {
		return "", err
	}
	return xlsxreport.BuildFilename("attendance_register"), nil
}
