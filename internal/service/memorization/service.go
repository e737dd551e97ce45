package memorization

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/memorization"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
)

// MemorizationService records setoran hafalan and tracks progress.
type MemorizationService interface {
	RecordEntry(ctx context.Context, req memorization.CreateEntryRequest) (memorization.EntryResponse, error)
	ListByStudent(ctx context.Context, studentID string, from, to *time.Time) ([]memorization.EntryResponse, error)
	Delete(ctx context.Context, id string) error
	Progress(ctx context.Context, studentID string) (memorization.ProgressResponse, error)
}

type memorizationServiceImpl struct {
	memorization.Repository
	student.StudentRepository
}

func NewMemorizationService(memorizationRepo memorization.Repository, studentRepo student.StudentRepository) MemorizationService {
	return &memorizationServiceImpl{
		Repository:        memorizationRepo,
		StudentRepository: studentRepo,
	}
}

// RecordEntry implements MemorizationService. The grading teacher comes
// from the JWT claims of the recorder.
func (m *memorizationServiceImpl) RecordEntry(ctx context.Context, req memorization.CreateEntryRequest) (memorization.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return memorization.EntryResponse{}, err
	}

	if _, err := m.StudentRepository.GetByID(ctx, req.StudentID); err != nil {
		return memorization.EntryResponse{}, memorization.ErrStudentNotFound
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return memorization.EntryResponse{}, err
		}
		date = parsed
	}

	entry := memorization.Entry{
		StudentID: req.StudentID,
		Surah:     req.Surah,
		SurahNo:   req.SurahNo,
		AyatFrom:  req.AyatFrom,
		AyatTo:    req.AyatTo,
		Juz:       req.Juz,
		Grade:     req.Grade,
		Date:      date,
		Note:      req.Note,
	}
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if staffID, _ := claims["staff_id"].(string); staffID != "" {
			entry.TeacherID = &staffID
		}
	}

	created, err := m.Repository.Create(ctx, entry)
	if err != nil {
		return memorization.EntryResponse{}, err
	}

	return memorization.ToResponse(created), nil
}

// ListByStudent implements MemorizationService.
func (m *memorizationServiceImpl) ListByStudent(ctx context.Context, studentID string, from, to *time.Time) ([]memorization.EntryResponse, error) {
	entries, err := m.Repository.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]memorization.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, memorization.ToResponse(e))
	}

	return responses, nil
}

// Delete implements MemorizationService.
func (m *memorizationServiceImpl) Delete(ctx context.Context, id string) error {
	return m.Repository.Delete(ctx, id)
}

// Progress implements MemorizationService.
func (m *memorizationServiceImpl) Progress(ctx context.Context, studentID string) (memorization.ProgressResponse, error) {
	if _, err := m.StudentRepository.GetByID(ctx, studentID); err != nil {
		return memorization.ProgressResponse{}, memorization.ErrStudentNotFound
	}

	progress, err := m.Repository.Progress(ctx, studentID)
	if err != nil {
		return memorization.ProgressResponse{}, err
	}

	resp := memorization.ProgressResponse{
		StudentID:      progress.StudentID,
		TotalEntries:   progress.TotalEntries,
		SurahCompleted: progress.SurahCompleted,
		JuzTouched:     progress.JuzTouched,
		LastSurah:      progress.LastSurah,
	}
	if progress.LastDate != nil {
		lastDate := progress.LastDate.Format("2006-01-02")
		resp.LastDate = &lastDate
	}

	return resp, nil
}
