package recap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/config"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/recap"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/staff"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/cache"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/pdf"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/storage"
)

type recapServiceImpl struct {
	attendanceRepo attendance.Repository
	staffAttRepo   attendance.StaffRepository
	studentRepo    student.StudentRepository
	staffRepo      staff.StaffRepository
	cache          *cache.Cache
	fileStorage    storage.FileStorage
	appConfig      config.AppConfig
}

func NewRecapService(
	attendanceRepo attendance.Repository,
	staffAttRepo attendance.StaffRepository,
	studentRepo student.StudentRepository,
	staffRepo staff.StaffRepository,
	recapCache *cache.Cache,
	fileStorage storage.FileStorage,
	appConfig config.AppConfig,
) recap.Service {
	return &recapServiceImpl{
		attendanceRepo: attendanceRepo,
		staffAttRepo:   staffAttRepo,
		studentRepo:    studentRepo,
		staffRepo:      staffRepo,
		cache:          recapCache,
		fileStorage:    fileStorage,
		appConfig:      appConfig,
	}
}

// ComputePerformance implements recap.Service. Results are cached under
// a key derived from the student and date range, so a stale value ages
// out on the cache TTL rather than being invalidated on write.
func (s *recapServiceImpl) ComputePerformance(ctx context.Context, req recap.PerformanceRequest) (recap.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return recap.PerformanceResponse{}, err
	}

	key := fmt.Sprintf("recap:perf:%s:%s:%s", req.StudentID, req.StartDate, req.EndDate)

	var cached recap.PerformanceResponse
	err := s.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		// A broken cache must not take recaps down with it.
		slog.Warn("recap cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return recap.PerformanceResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.StartDate)
	to, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.attendanceRepo.ListByStudent(ctx, req.StudentID, from, to)
	if err != nil {
		return recap.PerformanceResponse{}, err
	}

	resp := recap.PerformanceResponse{
		StudentID: req.StudentID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Result:    recap.ComputePerformance(records),
	}

	if err := s.cache.SetJSON(ctx, key, resp); err != nil {
		slog.Warn("recap cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return resp, nil
}

// StudentMonthlyMatrix implements recap.Service.
func (s *recapServiceImpl) StudentMonthlyMatrix(ctx context.Context, req recap.MonthlyMatrixRequest) (recap.MonthlyMatrix, error) {
	if err := req.Validate(); err != nil {
		return recap.MonthlyMatrix{}, err
	}

	subject, err := s.studentRepo.GetByID(ctx, req.SubjectID)
	if err != nil {
		return recap.MonthlyMatrix{}, err
	}

	from, to := monthBounds(req.Year, req.Month)
	records, err := s.attendanceRepo.ListByStudent(ctx, req.SubjectID, from, to)
	if err != nil {
		return recap.MonthlyMatrix{}, err
	}

	matrix := recap.BuildMonthlyMatrix(req.SubjectID, req.Year, req.Month, records)
	matrix.SubjectName = fmt.Sprintf("%s (%s)", subject.FullName, subject.NIS)

	return matrix, nil
}

// StaffMonthlyMatrix implements recap.Service.
func (s *recapServiceImpl) StaffMonthlyMatrix(ctx context.Context, req recap.MonthlyMatrixRequest) (recap.MonthlyMatrix, error) {
	if err := req.Validate(); err != nil {
		return recap.MonthlyMatrix{}, err
	}

	subject, err := s.staffRepo.GetByID(ctx, req.SubjectID)
	if err != nil {
		return recap.MonthlyMatrix{}, err
	}

	from, to := monthBounds(req.Year, req.Month)
	records, err := s.staffAttRepo.ListByStaff(ctx, req.SubjectID, from, to)
	if err != nil {
		return recap.MonthlyMatrix{}, err
	}

	matrix := recap.BuildStaffMonthlyMatrix(req.SubjectID, req.Year, req.Month, records)
	matrix.SubjectName = fmt.Sprintf("%s (%s)", subject.FullName, subject.NIP)

	return matrix, nil
}

// StudentMonthlyMatrixPDF implements recap.Service. An archive copy of
// every generated recap is kept in file storage.
func (s *recapServiceImpl) StudentMonthlyMatrixPDF(ctx context.Context, req recap.MonthlyMatrixRequest) ([]byte, error) {
	matrix, err := s.StudentMonthlyMatrix(ctx, req)
	if err != nil {
		return nil, err
	}

	rendered, err := pdf.RenderMonthlyMatrix(matrix, s.appConfig.PesantrenName)
	if err != nil {
		return nil, err
	}

	archivePath := fmt.Sprintf("recaps/%04d/%02d/%s.pdf", req.Year, req.Month, req.SubjectID)
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(rendered), archivePath, "application/pdf"); err != nil {
		// The caller still gets the PDF when archiving fails.
		slog.Warn("failed to archive recap pdf", slog.String("path", archivePath), slog.Any("error", err))
	}

	return rendered, nil
}

// monthBounds returns the first and last day of the month as date-only
// values, inclusive on both ends.
func monthBounds(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month), recap.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return from, to
}
