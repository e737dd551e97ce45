package staff

import "time"

// Staff is a pegawai: ustadz, musyrif, wali kamar, or administrator.
type Staff struct {
	ID        string
	NIP       string
	FullName  string
	Gender    string
	Position  string
	Phone     *string
	Email     *string
	RoomID    *string // set for wali kamar, the room they supervise
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	RoomName *string
}
