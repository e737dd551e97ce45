package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/user"
)

func TestNextStatus_HappyPath(t *testing.T) {
	next, err := NextStatus(StatusRequested, EventSupervisorApprove)
	require.NoError(t, err)
	assert.Equal(t, StatusSupervisorApproved, next)

	next, err = NextStatus(StatusSupervisorApproved, EventCoordinatorApprove)
	require.NoError(t, err)
	assert.Equal(t, StatusCoordinatorApproved, next)

	next, err = NextStatus(StatusCoordinatorApproved, EventReturn)
	require.NoError(t, err)
	assert.Equal(t, StatusReturned, next)

	next, err = NextStatus(StatusReturned, EventFinalize)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, next)
}

func TestNextStatus_IllegalPairs(t *testing.T) {
	statuses := []Status{
		StatusRequested,
		StatusSupervisorApproved,
		StatusCoordinatorApproved,
		StatusReturned,
		StatusCompleted,
		StatusLate,
	}
	events := []Event{
		EventSupervisorApprove,
		EventCoordinatorApprove,
		EventReturn,
		EventFinalize,
	}

	legal := map[Status]Event{
		StatusRequested:           EventSupervisorApprove,
		StatusSupervisorApproved:  EventCoordinatorApprove,
		StatusCoordinatorApproved: EventReturn,
		StatusReturned:            EventFinalize,
	}

	// Every (status, event) pair outside the transition table must be
	// rejected, including everything from a terminal state.
	for _, status := range statuses {
		for _, event := range events {
			if legal[status] == event {
				continue
			}
			_, err := NextStatus(status, event)
			assert.ErrorIs(t, err, ErrInvalidTransition, "status=%s event=%s", status, event)
		}
	}
}

func TestNextStatus_Override(t *testing.T) {
	for _, status := range []Status{StatusRequested, StatusSupervisorApproved, StatusCoordinatorApproved, StatusReturned} {
		next, err := NextStatus(status, EventOverride)
		require.NoError(t, err, "status=%s", status)
		assert.Equal(t, StatusCompleted, next)
	}

	// Terminal requests stay closed even for an override.
	for _, status := range []Status{StatusCompleted, StatusLate} {
		_, err := NextStatus(status, EventOverride)
		assert.ErrorIs(t, err, ErrInvalidTransition, "status=%s", status)
	}
}

func TestRoleMayFire(t *testing.T) {
	// Wali kamar approves the room step but never the coordinator step.
	assert.True(t, RoleMayFire(user.RoleWaliKamar, EventSupervisorApprove))
	assert.False(t, RoleMayFire(user.RoleWaliKamar, EventCoordinatorApprove))
	assert.True(t, RoleMayFire(user.RoleWaliKamar, EventReturn))
	assert.False(t, RoleMayFire(user.RoleWaliKamar, EventFinalize))

	// Musyrif owns the coordinator step and closing out.
	assert.True(t, RoleMayFire(user.RoleMusyrif, EventCoordinatorApprove))
	assert.True(t, RoleMayFire(user.RoleMusyrif, EventFinalize))
	assert.True(t, RoleMayFire(user.RoleMusyrif, EventOverride))
	assert.False(t, RoleMayFire(user.RoleMusyrif, EventSupervisorApprove))

	// Admin may fire everything.
	for _, event := range []Event{EventSupervisorApprove, EventCoordinatorApprove, EventReturn, EventFinalize, EventOverride} {
		assert.True(t, RoleMayFire(user.RoleAdmin, event), "event=%s", event)
	}

	// Teachers and parents have no say in the izin lifecycle.
	for _, role := range []user.Role{user.RoleUstadz, user.RoleWaliSantri} {
		for _, event := range []Event{EventSupervisorApprove, EventCoordinatorApprove, EventReturn, EventFinalize, EventOverride} {
			assert.False(t, RoleMayFire(role, event), "role=%s event=%s", role, event)
		}
	}
}

func TestResolveFinal(t *testing.T) {
	planned := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	grace := 30 * time.Minute

	// Back before jam_masuk.
	assert.Equal(t, StatusCompleted, ResolveFinal(planned.Add(-2*time.Hour), planned, grace))

	// Back inside the grace window, even exactly at its edge.
	assert.Equal(t, StatusCompleted, ResolveFinal(planned.Add(15*time.Minute), planned, grace))
	assert.Equal(t, StatusCompleted, ResolveFinal(planned.Add(30*time.Minute), planned, grace))

	// 17:45 with a 30 minute grace is late.
	assert.Equal(t, StatusLate, ResolveFinal(planned.Add(45*time.Minute), planned, grace))

	// Zero grace means any overrun is late.
	assert.Equal(t, StatusLate, ResolveFinal(planned.Add(time.Second), planned, 0))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusLate.IsTerminal())
	assert.False(t, StatusRequested.IsTerminal())
	assert.False(t, StatusCoordinatorApproved.IsTerminal())
	assert.False(t, StatusReturned.IsTerminal())
}

func TestEscortRequiresName(t *testing.T) {
	assert.True(t, EscortKerabat.RequiresName())
	assert.True(t, EscortLainnya.RequiresName())
	assert.False(t, EscortOrangTua.RequiresName())
	assert.False(t, EscortSendiri.RequiresName())
	assert.False(t, EscortWaliKamar.RequiresName())
}

func TestEscortIsValid(t *testing.T) {
	assert.True(t, EscortOrangTua.IsValid())
	assert.True(t, EscortWaliKamar.IsValid())
	assert.False(t, Escort("Tetangga").IsValid())
	assert.False(t, Escort("").IsValid())
}
