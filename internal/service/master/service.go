package master

import (
	"context"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/activity"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/dormitory"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/room"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/schoolclass"
)

type MasterService interface {
	// Dormitory operations
	CreateDormitory(ctx context.Context, req dormitory.CreateDormitoryRequest) (dormitory.DormitoryResponse, error)
	GetDormitory(ctx context.Context, id string) (dormitory.DormitoryResponse, error)
	ListDormitories(ctx context.Context) ([]dormitory.DormitoryResponse, error)
	UpdateDormitory(ctx context.Context, req dormitory.UpdateDormitoryRequest) error
	DeleteDormitory(ctx context.Context, id string) error

	// Room operations
	CreateRoom(ctx context.Context, req room.CreateRoomRequest) (room.RoomResponse, error)
	GetRoom(ctx context.Context, id string) (room.RoomResponse, error)
	ListRooms(ctx context.Context, dormitoryID *string) ([]room.RoomResponse, error)
	UpdateRoom(ctx context.Context, req room.UpdateRoomRequest) error
	DeleteRoom(ctx context.Context, id string) error

	// School class operations
	CreateClass(ctx context.Context, req schoolclass.CreateSchoolClassRequest) (schoolclass.SchoolClassResponse, error)
	GetClass(ctx context.Context, id string) (schoolclass.SchoolClassResponse, error)
	ListClasses(ctx context.Context) ([]schoolclass.SchoolClassResponse, error)
	UpdateClass(ctx context.Context, req schoolclass.UpdateSchoolClassRequest) error
	DeleteClass(ctx context.Context, id string) error

	// Activity and occurrence operations
	CreateActivity(ctx context.Context, req activity.CreateActivityRequest) (activity.ActivityResponse, error)
	GetActivity(ctx context.Context, id string) (activity.ActivityResponse, error)
	ListActivities(ctx context.Context, category *string) ([]activity.ActivityResponse, error)
	UpdateActivity(ctx context.Context, req activity.UpdateActivityRequest) error
	DeactivateActivity(ctx context.Context, id string) error
	CreateOccurrence(ctx context.Context, req activity.CreateOccurrenceRequest) (activity.OccurrenceResponse, error)
	ListOccurrences(ctx context.Context, activityID string) ([]activity.OccurrenceResponse, error)
	DeleteOccurrence(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	dormitoryRepo dormitory.DormitoryRepository
	roomRepo      room.RoomRepository
	classRepo     schoolclass.SchoolClassRepository
	activityRepo  activity.ActivityRepository
}

func NewMasterService(
	dormitoryRepo dormitory.DormitoryRepository,
	roomRepo room.RoomRepository,
	classRepo schoolclass.SchoolClassRepository,
	activityRepo activity.ActivityRepository,
) MasterService {
	return &masterServiceImpl{
		dormitoryRepo: dormitoryRepo,
		roomRepo:      roomRepo,
		classRepo:     classRepo,
		activityRepo:  activityRepo,
	}
}

// CreateDormitory implements MasterService.
func (m *masterServiceImpl) CreateDormitory(ctx context.Context, req dormitory.CreateDormitoryRequest) (dormitory.DormitoryResponse, error) {
	if err := req.Validate(); err != nil {
		return dormitory.DormitoryResponse{}, err
	}

	created, err := m.dormitoryRepo.Create(ctx, dormitory.Dormitory{
		Name:        req.Name,
		Gender:      req.Gender,
		Description: req.Description,
	})
	if err != nil {
		return dormitory.DormitoryResponse{}, err
	}

	return dormitory.ToResponse(created), nil
}

// GetDormitory implements MasterService.
func (m *masterServiceImpl) GetDormitory(ctx context.Context, id string) (dormitory.DormitoryResponse, error) {
	found, err := m.dormitoryRepo.GetByID(ctx, id)
	if err != nil {
		return dormitory.DormitoryResponse{}, err
	}
	return dormitory.ToResponse(found), nil
}

// ListDormitories implements MasterService.
func (m *masterServiceImpl) ListDormitories(ctx context.Context) ([]dormitory.DormitoryResponse, error) {
	dorms, err := m.dormitoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dormitory.DormitoryResponse, 0, len(dorms))
	for _, d := range dorms {
		responses = append(responses, dormitory.ToResponse(d))
	}

	return responses, nil
}

// UpdateDormitory implements MasterService.
func (m *masterServiceImpl) UpdateDormitory(ctx context.Context, req dormitory.UpdateDormitoryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return m.dormitoryRepo.Update(ctx, req)
}

// DeleteDormitory implements MasterService.
func (m *masterServiceImpl) DeleteDormitory(ctx context.Context, id string) error {
	return m.dormitoryRepo.Delete(ctx, id)
}

// CreateRoom implements MasterService.
func (m *masterServiceImpl) CreateRoom(ctx context.Context, req room.CreateRoomRequest) (room.RoomResponse, error) {
	if err := req.Validate(); err != nil {
		return room.RoomResponse{}, err
	}

	// The dormitory must exist before hanging a room off it.
	if _, err := m.dormitoryRepo.GetByID(ctx, req.DormitoryID); err != nil {
		return room.RoomResponse{}, err
	}

	created, err := m.roomRepo.Create(ctx, room.Room{
		DormitoryID: req.DormitoryID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		WaliKamarID: req.WaliKamarID,
	})
	if err != nil {
		return room.RoomResponse{}, err
	}

	return room.ToResponse(created), nil
}

// GetRoom implements MasterService.
func (m *masterServiceImpl) GetRoom(ctx context.Context, id string) (room.RoomResponse, error) {
	found, err := m.roomRepo.GetByID(ctx, id)
	if err != nil {
		return room.RoomResponse{}, err
	}
	return room.ToResponse(found), nil
}

// ListRooms implements MasterService.
func (m *masterServiceImpl) ListRooms(ctx context.Context, dormitoryID *string) ([]room.RoomResponse, error) {
	var (
		rooms []room.Room
		err   error
	)
	if dormitoryID != nil {
		rooms, err = m.roomRepo.ListByDormitory(ctx, *dormitoryID)
	} else {
		rooms, err = m.roomRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]room.RoomResponse, 0, len(rooms))
	for _, rm := range rooms {
		responses = append(responses, room.ToResponse(rm))
	}

	return responses, nil
}

// UpdateRoom implements MasterService.
func (m *masterServiceImpl) UpdateRoom(ctx context.Context, req room.UpdateRoomRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return m.roomRepo.Update(ctx, req)
}

// DeleteRoom implements MasterService.
func (m *masterServiceImpl) DeleteRoom(ctx context.Context, id string) error {
	return m.roomRepo.Delete(ctx, id)
}

// CreateClass implements MasterService.
func (m *masterServiceImpl) CreateClass(ctx context.Context, req schoolclass.CreateSchoolClassRequest) (schoolclass.SchoolClassResponse, error) {
	if err := req.Validate(); err != nil {
		return schoolclass.SchoolClassResponse{}, err
	}

	created, err := m.classRepo.Create(ctx, schoolclass.SchoolClass{
		Name:       req.Name,
		Level:      req.Level,
		HomeroomID: req.HomeroomID,
	})
	if err != nil {
		return schoolclass.SchoolClassResponse{}, err
	}

	return schoolclass.ToResponse(created), nil
}

// GetClass implements MasterService.
func (m *masterServiceImpl) GetClass(ctx context.Context, id string) (schoolclass.SchoolClassResponse, error) {
	found, err := m.classRepo.GetByID(ctx, id)
	if err != nil {
		return schoolclass.SchoolClassResponse{}, err
	}
	return schoolclass.ToResponse(found), nil
}

// ListClasses implements MasterService.
func (m *masterServiceImpl) ListClasses(ctx context.Context) ([]schoolclass.SchoolClassResponse, error) {
	classes, err := m.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schoolclass.SchoolClassResponse, 0, len(classes))
	for _, c := range classes {
		responses = append(responses, schoolclass.ToResponse(c))
	}

	return responses, nil
}

// UpdateClass implements MasterService.
func (m *masterServiceImpl) UpdateClass(ctx context.Context, req schoolclass.UpdateSchoolClassRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return m.classRepo.Update(ctx, req)
}

// DeleteClass implements MasterService.
func (m *masterServiceImpl) DeleteClass(ctx context.Context, id string) error {
	return m.classRepo.Delete(ctx, id)
}

// CreateActivity implements MasterService.
func (m *masterServiceImpl) CreateActivity(ctx context.Context, req activity.CreateActivityRequest) (activity.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return activity.ActivityResponse{}, err
	}

	created, err := m.activityRepo.Create(ctx, activity.Activity{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return activity.ActivityResponse{}, err
	}

	return activity.ToResponse(created), nil
}

// GetActivity implements MasterService.
func (m *masterServiceImpl) GetActivity(ctx context.Context, id string) (activity.ActivityResponse, error) {
	found, err := m.activityRepo.GetByID(ctx, id)
	if err != nil {
		return activity.ActivityResponse{}, err
	}
	return activity.ToResponse(found), nil
}

// ListActivities implements MasterService.
func (m *masterServiceImpl) ListActivities(ctx context.Context, category *string) ([]activity.ActivityResponse, error) {
	activities, err := m.activityRepo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	responses := make([]activity.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, activity.ToResponse(a))
	}

	return responses, nil
}

// UpdateActivity implements MasterService.
func (m *masterServiceImpl) UpdateActivity(ctx context.Context, req activity.UpdateActivityRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return m.activityRepo.Update(ctx, req)
}

// DeactivateActivity implements MasterService.
func (m *masterServiceImpl) DeactivateActivity(ctx context.Context, id string) error {
	return m.activityRepo.Deactivate(ctx, id)
}

// CreateOccurrence implements MasterService.
func (m *masterServiceImpl) CreateOccurrence(ctx context.Context, req activity.CreateOccurrenceRequest) (activity.OccurrenceResponse, error) {
	if err := req.Validate(); err != nil {
		return activity.OccurrenceResponse{}, err
	}

	if _, err := m.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		return activity.OccurrenceResponse{}, err
	}

	created, err := m.activityRepo.CreateOccurrence(ctx, activity.Occurrence{
		ActivityID: req.ActivityID,
		Label:      req.Label,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Weekday:    req.Weekday,
		TeacherID:  req.TeacherID,
	})
	if err != nil {
		return activity.OccurrenceResponse{}, err
	}

	return activity.ToOccurrenceResponse(created), nil
}

// ListOccurrences implements MasterService.
func (m *masterServiceImpl) ListOccurrences(ctx context.Context, activityID string) ([]activity.OccurrenceResponse, error) {
	occurrences, err := m.activityRepo.ListOccurrences(ctx, activityID)
	if err != nil {
		return nil, err
	}

	responses := make([]activity.OccurrenceResponse, 0, len(occurrences))
	for _, o := range occurrences {
		responses = append(responses, activity.ToOccurrenceResponse(o))
	}

	return responses, nil
}

// DeleteOccurrence implements MasterService.
func (m *masterServiceImpl) DeleteOccurrence(ctx context.Context, id string) error {
	return m.activityRepo.DeleteOccurrence(ctx, id)
}
