package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"01890a5d-ac96-774b-bcce-b302099a8057",
		"01890A5D-AC96-774B-BCCE-B302099A8057",
	}
	invalid := []string{
		"01890a5d-ac96-474b-bcce-b302099a8057", // version 4
		"01890a5dac96774bbcceb302099a8057",
		"not-a-uuid",
		"",
	}
	for _, s := range valid {
		if !IsValidUUID(s) {
			t.Errorf("IsValidUUID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUUID(s) {
			t.Errorf("IsValidUUID(%q) = true, want false", s)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"12345", true},
		{"0", true},
		{"", false},
		{"12a45", false},
		{"-123", false},
		{"1.5", false},
	}
	for _, c := range cases {
		got := IsNumeric(c.input)
		if got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "kemarin"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "17:45", "23:59"}
	invalid := []string{"24:00", "8:30", "17:60", "17.30", "pagi", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidNIS(t *testing.T) {
	valid := []string{"12345678", "202400123456"}
	invalid := []string{"1234567", "1234567890123", "12a45678", ""}
	for _, s := range valid {
		if !IsValidNIS(s) {
			t.Errorf("IsValidNIS(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidNIS(s) {
			t.Errorf("IsValidNIS(%q) = true, want false", s)
		}
	}
}

func TestIsValidNIP(t *testing.T) {
	valid := []string{"12345678", "198701012010011001"}
	invalid := []string{"1234567", "1987010120100110011", "19870101x010011001", ""}
	for _, s := range valid {
		if !IsValidNIP(s) {
			t.Errorf("IsValidNIP(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidNIP(s) {
			t.Errorf("IsValidNIP(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"081234567890", "6281234567890", "+628123456789", "0812-3456-7890"}
	invalid := []string{"12345", "081234", "abcdefghij", ""}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+07:00",
		"2024-01-15T10:30:00.123Z",
	}
	invalid := []string{"2024-01-15", "2024-01-15 10:30:00", "", "besok sore"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"hadir", "izin", "sakit", "alpa"}
	if !IsInSlice("izin", slice) {
		t.Error("IsInSlice(izin) = false, want true")
	}
	if IsInSlice("bolos", slice) {
		t.Error("IsInSlice(bolos) = true, want false")
	}
	if IsInSlice("hadir", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nis", Message: "nis is required"},
		{Field: "full_name", Message: "full_name is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["nis"] != "nis is required" {
		t.Errorf("ToMap()[nis] = %q", m["nis"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
