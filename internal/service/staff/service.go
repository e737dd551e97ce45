package staff

import (
	"context"
	"fmt"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/staff"
)

// StaffService covers pegawai record keeping.
type StaffService interface {
	Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error)
	Get(ctx context.Context, id string) (staff.StaffResponse, error)
	Update(ctx context.Context, req staff.UpdateStaffRequest) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffResponse, int64, error)
}

type staffServiceImpl struct {
	staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) StaffService {
	return &staffServiceImpl{StaffRepository: staffRepo}
}

// Create implements StaffService.
func (s *staffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	exists, err := s.StaffRepository.ExistsByNIP(ctx, req.NIP)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to check nip: %w", err)
	}
	if exists {
		return staff.StaffResponse{}, staff.ErrNIPExists
	}

	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		NIP:      req.NIP,
		FullName: req.FullName,
		Gender:   req.Gender,
		Position: req.Position,
		Phone:    req.Phone,
		Email:    req.Email,
		RoomID:   req.RoomID,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return staff.ToResponse(created), nil
}

// Get implements StaffService.
func (s *staffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	found, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToResponse(found), nil
}

// Update implements StaffService.
func (s *staffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.StaffRepository.Update(ctx, req)
}

// Deactivate implements StaffService.
func (s *staffServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.StaffRepository.Deactivate(ctx, id)
}

// List implements StaffService.
func (s *staffServiceImpl) List(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffResponse, int64, error) {
	members, total, err := s.StaffRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, staff.ToResponse(m))
	}

	return responses, total, nil
}
