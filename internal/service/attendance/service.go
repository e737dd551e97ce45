package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/activity"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	StaffAttendance attendance.StaffRepository
	student.StudentRepository
	activity.ActivityRepository
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	staffAttendanceRepo attendance.StaffRepository,
	studentRepo student.StudentRepository,
	activityRepo activity.ActivityRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		Repository:         attendanceRepo,
		StaffAttendance:    staffAttendanceRepo,
		StudentRepository:  studentRepo,
		ActivityRepository: activityRepo,
	}
}

// parseDay parses a YYYY-MM-DD string into a date-only value, defaulting
// to today when empty.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

// RecordAttendance implements attendance.Service.
func (a *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, err := parseDay(req.Date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	studentData, err := a.StudentRepository.GetByID(ctx, req.StudentID)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrStudentNotFound
	}
	if !studentData.Active {
		return attendance.RecordResponse{}, attendance.ErrStudentNotFound
	}

	if _, err := a.ActivityRepository.GetOccurrenceByID(ctx, req.OccurrenceID); err != nil {
		return attendance.RecordResponse{}, attendance.ErrOccurrenceNotFound
	}

	rec := attendance.Record{
		OccurrenceID: req.OccurrenceID,
		StudentID:    req.StudentID,
		Date:         date,
		Status:       attendance.Status(req.Status),
		Note:         req.Note,
	}
	if recordedBy := userIDFromContext(ctx); recordedBy != "" {
		rec.RecordedBy = &recordedBy
	}

	saved, err := a.Repository.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(saved), nil
}

// RecordRollCall implements attendance.Service. Each roster entry is an
// independent upsert in one transaction. When the recorder is a staff
// member, the roll call also implies their own presence for the slot.
func (a *AttendanceServiceImpl) RecordRollCall(ctx context.Context, req attendance.RollCallRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := a.ActivityRepository.GetOccurrenceByID(ctx, req.OccurrenceID); err != nil {
		return nil, attendance.ErrOccurrenceNotFound
	}

	recordedBy := userIDFromContext(ctx)

	recs := make([]attendance.Record, 0, len(req.Entries))
	for _, entry := range req.Entries {
		// The whole roster is validated up front so an unknown santri
		// rejects the roll call instead of failing the transaction.
		rosterStudent, err := a.StudentRepository.GetByID(ctx, entry.StudentID)
		if err != nil || !rosterStudent.Active {
			return nil, attendance.ErrStudentNotFound
		}

		rec := attendance.Record{
			OccurrenceID: req.OccurrenceID,
			StudentID:    entry.StudentID,
			Date:         date,
			Status:       attendance.Status(entry.Status),
			Note:         entry.Note,
		}
		if recordedBy != "" {
			rec.RecordedBy = &recordedBy
		}
		recs = append(recs, rec)
	}

	saved, err := a.Repository.UpsertBatch(ctx, recs)
	if err != nil {
		return nil, err
	}

	if staffID := staffIDFromContext(ctx); staffID != "" && len(saved) > 0 {
		staffRec := attendance.StaffRecord{
			StaffID:         staffID,
			OccurrenceID:    req.OccurrenceID,
			Date:            date,
			StudentRecordID: &saved[0].ID,
		}
		if _, err := a.StaffAttendance.Record(ctx, staffRec); err != nil {
			return nil, fmt.Errorf("failed to derive staff presence: %w", err)
		}
	}

	responses := make([]attendance.RecordResponse, 0, len(saved))
	for _, rec := range saved {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}

// ListStudentAttendance implements attendance.Service.
func (a *AttendanceServiceImpl) ListStudentAttendance(ctx context.Context, studentID, startDate, endDate string) ([]attendance.RecordResponse, error) {
	from, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, err
	}

	if _, err := a.StudentRepository.GetByID(ctx, studentID); err != nil {
		return nil, attendance.ErrStudentNotFound
	}

	records, err := a.Repository.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}

// ListAttendance implements attendance.Service.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	records, total, err := a.Repository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return attendance.ListResponse{Records: responses, Total: total}, nil
}

// GetOccurrenceSheet implements attendance.Service.
func (a *AttendanceServiceImpl) GetOccurrenceSheet(ctx context.Context, occurrenceID, date string) ([]attendance.RecordResponse, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	if _, err := a.ActivityRepository.GetOccurrenceByID(ctx, occurrenceID); err != nil {
		return nil, attendance.ErrOccurrenceNotFound
	}

	records, err := a.Repository.ListByOccurrenceAndDate(ctx, occurrenceID, day)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}

func userIDFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

func staffIDFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	staffID, _ := claims["staff_id"].(string)
	return staffID
}
