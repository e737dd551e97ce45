package leave

import (
	"time"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/user"
)

// Status is the lifecycle state of an izin.
type Status string

const (
	StatusRequested           Status = "requested"
	StatusSupervisorApproved  Status = "supervisor_approved"
	StatusCoordinatorApproved Status = "coordinator_approved"
	StatusReturned            Status = "returned"
	StatusCompleted           Status = "completed"
	StatusLate                Status = "late"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusLate
}

// Event is a requested lifecycle transition.
type Event string

const (
	EventSupervisorApprove  Event = "supervisor_approve"  // wali kamar signs off
	EventCoordinatorApprove Event = "coordinator_approve" // musyrif signs off
	EventReturn             Event = "return"              // santri is back at the gate
	EventFinalize           Event = "finalize"            // close out as completed or late
	EventOverride           Event = "override"            // administrative direct close
)

// Escort (pamong) categories. Kerabat and Lainnya must name the escort.
type Escort string

const (
	EscortOrangTua  Escort = "Orang Tua"
	EscortKerabat   Escort = "Kerabat"
	EscortSendiri   Escort = "Sendiri"
	EscortWaliKamar Escort = "Wali Kamar"
	EscortLainnya   Escort = "Lainnya"
)

// RequiresName reports whether the escort category needs an explicit
// escort name on the request.
func (e Escort) RequiresName() bool {
	return e == EscortKerabat || e == EscortLainnya
}

func (e Escort) IsValid() bool {
	switch e {
	case EscortOrangTua, EscortKerabat, EscortSendiri, EscortWaliKamar, EscortLainnya:
		return true
	}
	return false
}

// Request is a dormitory leave (izin) row. Rows are never hard-deleted;
// the status history is the audit trail.
type Request struct {
	ID                 string
	StudentID          string
	StartDate          time.Time
	EndDate            time.Time
	DepartureTime      string // HH:MM, planned exit
	PlannedReturnAt    time.Time
	ActualReturnAt     *time.Time
	Reason             string
	Escort             Escort
	EscortName         *string
	Status             Status
	SupervisorApproved bool
	ApprovedBy         *string
	ApprovedAt         *time.Time
	CreatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO / Join
	StudentName *string
	StudentNIS  *string
	RoomName    *string
}

// transitions lists the legal (from, event) pairs and their target state.
// EventOverride is handled separately: it may close any non-terminal
// request directly.
var transitions = map[Status]map[Event]Status{
	StatusRequested: {
		EventSupervisorApprove: StatusSupervisorApproved,
	},
	StatusSupervisorApproved: {
		EventCoordinatorApprove: StatusCoordinatorApproved,
	},
	StatusCoordinatorApproved: {
		EventReturn: StatusReturned,
	},
	// EventFinalize from Returned resolves to Completed or Late based
	// on the actual return time; NextStatus reports Completed and the
	// caller substitutes Late when past grace.
	StatusReturned: {
		EventFinalize: StatusCompleted,
	},
}

// NextStatus returns the target state for the (current, event) pair, or
// ErrInvalidTransition when the pair is not in the table. For both
// EventFinalize and EventOverride the reported target is Completed and
// the caller substitutes Late when the return was past grace.
func NextStatus(current Status, event Event) (Status, error) {
	if event == EventOverride {
		if current.IsTerminal() {
			return "", ErrInvalidTransition
		}
		return StatusCompleted, nil
	}

	targets, ok := transitions[current]
	if !ok {
		return "", ErrInvalidTransition
	}
	next, ok := targets[event]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// eventAuthority maps each event to the roles allowed to fire it.
var eventAuthority = map[Event][]user.Role{
	EventSupervisorApprove:  {user.RoleWaliKamar, user.RoleAdmin},
	EventCoordinatorApprove: {user.RoleMusyrif, user.RoleAdmin},
	EventReturn:             {user.RoleMusyrif, user.RoleWaliKamar, user.RoleAdmin},
	EventFinalize:           {user.RoleMusyrif, user.RoleAdmin},
	EventOverride:           {user.RoleMusyrif, user.RoleAdmin},
}

// RoleMayFire reports whether the actor role is allowed to fire the event.
func RoleMayFire(role user.Role, event Event) bool {
	allowed, ok := eventAuthority[event]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// ResolveFinal decides between Completed and Late for a returned leave:
// a return after planned + grace is late.
func ResolveFinal(actualReturn, plannedReturn time.Time, grace time.Duration) Status {
	if actualReturn.After(plannedReturn.Add(grace)) {
		return StatusLate
	}
	return StatusCompleted
}
