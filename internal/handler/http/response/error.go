package response

import (
	"errors"
	"net/http"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/attendance"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/auth"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/billing"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/conduct"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/leave"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/activity"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/dormitory"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/room"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/master/schoolclass"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/memorization"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/staff"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/student"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/user"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth and user domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidPasswordLength):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrMusyrifAccessRequired),
		errors.Is(err, user.ErrWaliKamarAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Student and staff domain errors
	case errors.Is(err, student.ErrStudentNotFound),
		errors.Is(err, attendance.ErrStudentNotFound),
		errors.Is(err, leave.ErrStudentNotFound),
		errors.Is(err, conduct.ErrStudentNotFound),
		errors.Is(err, memorization.ErrStudentNotFound),
		errors.Is(err, billing.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, student.ErrNISExists):
		Conflict(w, "NIS already registered")
	case errors.Is(err, student.ErrRoomFull):
		Conflict(w, "Room capacity reached")
	case errors.Is(err, student.ErrStudentInactive):
		BadRequest(w, "Student is not active", nil)
	case errors.Is(err, student.ErrInvalidPhotoFormat):
		BadRequest(w, "Photo must be a jpg, jpeg or png file", nil)
	case errors.Is(err, staff.ErrStaffNotFound), errors.Is(err, attendance.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrNIPExists):
		Conflict(w, "NIP already registered")

	// Master data domain errors
	case errors.Is(err, dormitory.ErrDormitoryNotFound):
		NotFound(w, "Dormitory not found")
	case errors.Is(err, dormitory.ErrDormitoryNameExists):
		Conflict(w, "Dormitory name already exists")
	case errors.Is(err, dormitory.ErrDormitoryNotEmpty):
		Conflict(w, "Dormitory still has rooms assigned")
	case errors.Is(err, room.ErrRoomNotFound):
		NotFound(w, "Room not found")
	case errors.Is(err, room.ErrRoomNameExists):
		Conflict(w, "Room name already exists in this dormitory")
	case errors.Is(err, room.ErrRoomOccupied):
		Conflict(w, "Room still has students assigned")
	case errors.Is(err, schoolclass.ErrClassNotFound):
		NotFound(w, "School class not found")
	case errors.Is(err, schoolclass.ErrClassNameExists):
		Conflict(w, "School class name already exists")
	case errors.Is(err, schoolclass.ErrClassNotEmpty):
		Conflict(w, "School class still has students assigned")
	case errors.Is(err, activity.ErrActivityNotFound):
		NotFound(w, "Activity not found")
	case errors.Is(err, activity.ErrOccurrenceNotFound), errors.Is(err, attendance.ErrOccurrenceNotFound):
		NotFound(w, "Activity occurrence not found")
	case errors.Is(err, activity.ErrActivityNameExists):
		Conflict(w, "Activity name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrEmptyRoster):
		BadRequest(w, "Roll call roster is empty", nil)
	case errors.Is(err, attendance.ErrRosterStatusMissing):
		BadRequest(w, "Every roster entry needs a status", nil)
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance already recorded for this occurrence and date")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Transition not allowed from current status")
	case errors.Is(err, leave.ErrForbiddenTransition):
		Forbidden(w, "Role cannot perform this transition")
	case errors.Is(err, leave.ErrStaleStatus):
		Conflict(w, "Leave request was changed by someone else, reload and retry")
	case errors.Is(err, leave.ErrEscortNameRequired):
		BadRequest(w, "Escort name is required for this escort category", nil)
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrRequestAlreadyClosed):
		Conflict(w, "Leave request already completed")
	case errors.Is(err, leave.ErrActualReturnMissing):
		Conflict(w, "Actual return time has not been recorded")

	// Conduct and memorization domain errors
	case errors.Is(err, conduct.ErrViolationNotFound):
		NotFound(w, "Violation record not found")
	case errors.Is(err, conduct.ErrAchievementNotFound):
		NotFound(w, "Achievement record not found")
	case errors.Is(err, memorization.ErrEntryNotFound):
		NotFound(w, "Memorization entry not found")

	// Billing domain errors
	case errors.Is(err, billing.ErrBillNotFound):
		NotFound(w, "Bill not found")
	case errors.Is(err, billing.ErrBillExists):
		Conflict(w, "Bill already exists for this student and period")
	case errors.Is(err, billing.ErrBillAlreadyPaid):
		Conflict(w, "Bill has already been paid")
	case errors.Is(err, billing.ErrInvoiceMismatch):
		NotFound(w, "Invoice reference does not match any bill")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
