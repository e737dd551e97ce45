package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Leave (izin) Management
	PermissionLeaveViewOwn        Permission = "leave.view_own"
	PermissionLeaveCreate         Permission = "leave.create"
	PermissionLeaveViewAll        Permission = "leave.view_all"
	PermissionLeaveApproveRoom    Permission = "leave.approve_room"
	PermissionLeaveApproveFinal   Permission = "leave.approve_final"
	PermissionLeaveRecordReturn   Permission = "leave.record_return"
	PermissionLeaveOverrideStatus Permission = "leave.override_status"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceRecord  Permission = "attendance.record"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Student Management
	PermissionStudentViewAll Permission = "student.view_all"
	PermissionStudentManage  Permission = "student.manage"

	// Staff Management
	PermissionStaffViewAll Permission = "staff.view_all"
	PermissionStaffManage  Permission = "staff.manage"

	// Conduct (violations/achievements)
	PermissionConductRecord Permission = "conduct.record"
	PermissionConductView   Permission = "conduct.view"

	// Memorization
	PermissionMemorizationRecord Permission = "memorization.record"
	PermissionMemorizationView   Permission = "memorization.view"

	// Billing (SPP)
	PermissionBillingManage Permission = "billing.manage"
	PermissionBillingView   Permission = "billing.view"

	// Recaps / Reports
	PermissionRecapView Permission = "recap.view"

	// Master data
	PermissionMasterManage Permission = "master.manage"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApproveRoom,
		PermissionLeaveApproveFinal,
		PermissionLeaveRecordReturn,
		PermissionLeaveOverrideStatus,
		PermissionAttendanceViewOwn,
		PermissionAttendanceRecord,
		PermissionAttendanceViewAll,
		PermissionStudentViewAll,
		PermissionStudentManage,
		PermissionStaffViewAll,
		PermissionStaffManage,
		PermissionConductRecord,
		PermissionConductView,
		PermissionMemorizationRecord,
		PermissionMemorizationView,
		PermissionBillingManage,
		PermissionBillingView,
		PermissionRecapView,
		PermissionMasterManage,
		PermissionUserManage,
	},
	RoleMusyrif: {
		// Dormitory coordinator creates izin on behalf of santri,
		// gives final approval and records returns
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApproveFinal,
		PermissionLeaveRecordReturn,
		PermissionLeaveOverrideStatus,
		PermissionAttendanceRecord,
		PermissionAttendanceViewAll,
		PermissionStudentViewAll,
		PermissionConductRecord,
		PermissionConductView,
		PermissionRecapView,
	},
	RoleUstadz: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceRecord,
		PermissionAttendanceViewAll,
		PermissionStudentViewAll,
		PermissionMemorizationRecord,
		PermissionMemorizationView,
		PermissionRecapView,
	},
	RoleWaliKamar: {
		// Room parent gives the first-level izin approval
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewAll,
		PermissionLeaveApproveRoom,
		PermissionAttendanceRecord,
		PermissionAttendanceViewAll,
		PermissionStudentViewAll,
		PermissionConductRecord,
		PermissionConductView,
		PermissionRecapView,
	},
	RoleWaliSantri: {
		// Parents see their own child only
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionAttendanceViewOwn,
		PermissionConductView,
		PermissionMemorizationView,
		PermissionBillingView,
		PermissionRecapView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
