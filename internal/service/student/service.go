package student

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/room"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/storage"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// StudentService covers santri record keeping, including dormitory room
// placement.
type StudentService interface {
	Create(ctx context.Context, req student.CreateStudentRequest) (student.StudentResponse, error)
	Get(ctx context.Context, id string) (student.StudentResponse, error)
	Update(ctx context.Context, req student.UpdateStudentRequest) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, filter student.StudentFilter) ([]student.StudentResponse, int64, error)
	AssignRoom(ctx context.Context, studentID string, roomID *string) error
	RoomRoster(ctx context.Context, roomID string) ([]student.StudentResponse, error)
	UploadPhoto(ctx context.Context, studentID string, file io.Reader, filename string) (string, error)
}

type studentServiceImpl struct {
	student.StudentRepository
	room.RoomRepository
	fileStorage storage.FileStorage
}

func NewStudentService(studentRepo student.StudentRepository, roomRepo room.RoomRepository, fileStorage storage.FileStorage) StudentService {
	return &studentServiceImpl{
		StudentRepository: studentRepo,
		RoomRepository:    roomRepo,
		fileStorage:       fileStorage,
	}
}

// Create implements StudentService.
func (s *studentServiceImpl) Create(ctx context.Context, req student.CreateStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}

	exists, err := s.StudentRepository.ExistsByNIS(ctx, req.NIS)
	if err != nil {
		return student.StudentResponse{}, fmt.Errorf("failed to check nis: %w", err)
	}
	if exists {
		return student.StudentResponse{}, student.ErrNISExists
	}

	if req.RoomID != nil {
		if err := s.checkRoomCapacity(ctx, *req.RoomID); err != nil {
			return student.StudentResponse{}, err
		}
	}

	newStudent := student.Student{
		NIS:           req.NIS,
		FullName:      req.FullName,
		Gender:        req.Gender,
		BirthPlace:    req.BirthPlace,
		RoomID:        req.RoomID,
		ClassID:       req.ClassID,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Address:       req.Address,
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return student.StudentResponse{}, err
		}
		newStudent.BirthDate = &birthDate
	}

	created, err := s.StudentRepository.Create(ctx, newStudent)
	if err != nil {
		return student.StudentResponse{}, err
	}

	return student.ToResponse(created), nil
}

// Get implements StudentService.
func (s *studentServiceImpl) Get(ctx context.Context, id string) (student.StudentResponse, error) {
	found, err := s.StudentRepository.GetByID(ctx, id)
	if err != nil {
		return student.StudentResponse{}, err
	}
	return student.ToResponse(found), nil
}

// Update implements StudentService.
func (s *studentServiceImpl) Update(ctx context.Context, req student.UpdateStudentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.RoomID != nil {
		if err := s.checkRoomCapacity(ctx, *req.RoomID); err != nil {
			return err
		}
	}

	return s.StudentRepository.Update(ctx, req)
}

// Deactivate implements StudentService.
func (s *studentServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.StudentRepository.Deactivate(ctx, id)
}

// List implements StudentService.
func (s *studentServiceImpl) List(ctx context.Context, filter student.StudentFilter) ([]student.StudentResponse, int64, error) {
	students, total, err := s.StudentRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]student.StudentResponse, 0, len(students))
	for _, st := range students {
		responses = append(responses, student.ToResponse(st))
	}

	return responses, total, nil
}

// AssignRoom implements StudentService.
func (s *studentServiceImpl) AssignRoom(ctx context.Context, studentID string, roomID *string) error {
	found, err := s.StudentRepository.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if !found.Active {
		return student.ErrStudentInactive
	}

	if roomID != nil {
		if err := s.checkRoomCapacity(ctx, *roomID); err != nil {
			return err
		}
	}

	return s.StudentRepository.AssignRoom(ctx, studentID, roomID)
}

// RoomRoster implements StudentService.
func (s *studentServiceImpl) RoomRoster(ctx context.Context, roomID string) ([]student.StudentResponse, error) {
	if _, err := s.RoomRepository.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	roster, err := s.StudentRepository.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	responses := make([]student.StudentResponse, 0, len(roster))
	for _, st := range roster {
		responses = append(responses, student.ToResponse(st))
	}

	return responses, nil
}

// UploadPhoto implements StudentService. The stored filename carries a
// random component so a re-upload never collides with a cached copy of
// the old photo.
func (s *studentServiceImpl) UploadPhoto(ctx context.Context, studentID string, file io.Reader, filename string) (string, error) {
	found, err := s.StudentRepository.GetByID(ctx, studentID)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", student.ErrInvalidPhotoFormat
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	uniqueID := uuid.New().String()
	path := filepath.Join("photos", found.ID, fmt.Sprintf("%s%s", uniqueID, ext))

	uploadedPath, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	if err := s.StudentRepository.Update(ctx, student.UpdateStudentRequest{
		ID:       found.ID,
		PhotoURL: &uploadedPath,
	}); err != nil {
		return "", err
	}

	// Best-effort cleanup of the replaced photo.
	if found.PhotoURL != nil && *found.PhotoURL != uploadedPath {
		if err := s.fileStorage.Delete(ctx, *found.PhotoURL); err != nil {
			slog.Warn("failed to delete previous photo", slog.String("path", *found.PhotoURL), slog.Any("error", err))
		}
	}

	return uploadedPath, nil
}

func (s *studentServiceImpl) checkRoomCapacity(ctx context.Context, roomID string) error {
	rm, err := s.RoomRepository.GetByID(ctx, roomID)
	if err != nil {
		return err
	}

	occupancy, err := s.RoomRepository.Occupancy(ctx, roomID)
	if err != nil {
		return err
	}
	if occupancy >= rm.Capacity {
		return student.ErrRoomFull
	}

	return nil
}
