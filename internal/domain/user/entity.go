package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"       // Pesantren administrator - full access
	RoleMusyrif    Role = "musyrif"     // Dormitory coordinator - manages izin and roll call
	RoleUstadz     Role = "ustadz"      // Teacher - records class attendance and memorization
	RoleWaliKamar  Role = "wali_kamar"  // Room parent - supervises a dormitory room
	RoleWaliSantri Role = "wali_santri" // Parent - read-only view of their child
)

type User struct {
	ID              string
	Username        string
	Email           *string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	StaffID   *string
	StudentID *string
}

// IsAdmin checks if user is a pesantren administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupervisor checks if user supervises dormitory students
func (u *User) IsSupervisor() bool {
	return u.Role == RoleMusyrif || u.Role == RoleWaliKamar || u.Role == RoleAdmin
}

// IsParent checks if user is a parent account
func (u *User) IsParent() bool {
	return u.Role == RoleWaliSantri
}
