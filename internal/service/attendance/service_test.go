package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/activity"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
)

type fakeAttendanceRepo struct {
	attendance.Repository
	batches [][]attendance.Record
}

func (f *fakeAttendanceRepo) UpsertBatch(ctx context.Context, recs []attendance.Record) ([]attendance.Record, error) {
	f.batches = append(f.batches, recs)
	saved := make([]attendance.Record, 0, len(recs))
	for i, rec := range recs {
		rec.ID = "rec-" + string(rune('a'+i))
		saved = append(saved, rec)
	}
	return saved, nil
}

type fakeStaffRepo struct {
	attendance.StaffRepository
	recorded []attendance.StaffRecord
}

func (f *fakeStaffRepo) Record(ctx context.Context, rec attendance.StaffRecord) (attendance.StaffRecord, error) {
	f.recorded = append(f.recorded, rec)
	return rec, nil
}

type fakeStudentRepo struct {
	student.StudentRepository
	students map[string]student.Student
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (student.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return student.Student{}, student.ErrStudentNotFound
	}
	return s, nil
}

type fakeActivityRepo struct {
	activity.ActivityRepository
	occurrence activity.Occurrence
}

func (f *fakeActivityRepo) GetOccurrenceByID(ctx context.Context, id string) (activity.Occurrence, error) {
	if id != f.occurrence.ID {
		return activity.Occurrence{}, activity.ErrOccurrenceNotFound
	}
	return f.occurrence, nil
}

func ctxWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func activeStudent(id string) student.Student {
	return student.Student{ID: id, NIS: "20240001", FullName: "Ahmad Fauzi", Active: true}
}

func newRollCallFixture() (*fakeAttendanceRepo, *fakeStaffRepo, *fakeStudentRepo, attendance.Service) {
	repo := &fakeAttendanceRepo{}
	staffRepo := &fakeStaffRepo{}
	students := &fakeStudentRepo{students: map[string]student.Student{
		"santri-1": activeStudent("santri-1"),
		"santri-2": activeStudent("santri-2"),
	}}
	activities := &fakeActivityRepo{occurrence: activity.Occurrence{
		ID:         "occ-1",
		ActivityID: "act-1",
		Label:      "Subuh",
		StartTime:  "04:30",
		EndTime:    "05:30",
		CreatedAt:  time.Now(),
	}}
	svc := NewAttendanceService(repo, staffRepo, students, activities)
	return repo, staffRepo, students, svc
}

func TestRecordRollCall_RecordsRoster(t *testing.T) {
	repo, staffRepo, _, svc := newRollCallFixture()
	ctx := ctxWithClaims(t, map[string]interface{}{
		"user_id":  "user-1",
		"staff_id": "staff-1",
		"role":     "musyrif",
		"type":     "access",
	})

	responses, err := svc.RecordRollCall(ctx, attendance.RollCallRequest{
		OccurrenceID: "occ-1",
		Date:         "2024-03-09",
		Entries: []attendance.RosterEntry{
			{StudentID: "santri-1", Status: string(attendance.StatusHadir)},
			{StudentID: "santri-2", Status: string(attendance.StatusSakit)},
		},
	})
	require.NoError(t, err)
	require.Len(t, responses, 2)

	require.Len(t, repo.batches, 1)
	assert.Equal(t, attendance.StatusSakit, repo.batches[0][1].Status)

	// A staff-recorded roll call implies the recorder's own presence.
	require.Len(t, staffRepo.recorded, 1)
	assert.Equal(t, "staff-1", staffRepo.recorded[0].StaffID)
	assert.Equal(t, "occ-1", staffRepo.recorded[0].OccurrenceID)
}

func TestRecordRollCall_UnknownStudent(t *testing.T) {
	repo, _, _, svc := newRollCallFixture()
	ctx := ctxWithClaims(t, map[string]interface{}{
		"user_id": "user-1",
		"role":    "musyrif",
		"type":    "access",
	})

	_, err := svc.RecordRollCall(ctx, attendance.RollCallRequest{
		OccurrenceID: "occ-1",
		Date:         "2024-03-09",
		Entries: []attendance.RosterEntry{
			{StudentID: "santri-1", Status: string(attendance.StatusHadir)},
			{StudentID: "santri-nonexistent", Status: string(attendance.StatusHadir)},
		},
	})
	assert.ErrorIs(t, err, attendance.ErrStudentNotFound)

	// A bad roster entry must reject the whole roll call.
	assert.Empty(t, repo.batches)
}

func TestRecordRollCall_InactiveStudent(t *testing.T) {
	repo, _, students, svc := newRollCallFixture()
	withdrawn := activeStudent("santri-3")
	withdrawn.Active = false
	students.students["santri-3"] = withdrawn

	ctx := ctxWithClaims(t, map[string]interface{}{
		"user_id": "user-1",
		"role":    "musyrif",
		"type":    "access",
	})

	_, err := svc.RecordRollCall(ctx, attendance.RollCallRequest{
		OccurrenceID: "occ-1",
		Date:         "2024-03-09",
		Entries: []attendance.RosterEntry{
			{StudentID: "santri-3", Status: string(attendance.StatusHadir)},
		},
	})
	assert.ErrorIs(t, err, attendance.ErrStudentNotFound)
	assert.Empty(t, repo.batches)
}
