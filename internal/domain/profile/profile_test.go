package profile

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampusID_AcceptsEightDigits(t *testing.T) {
	// A spread of all-digit 8-character IDs, including leading zeros.
	for _, n := range []int{0, 1, 7, 1234567, 99999999, 20250831} {
		id := CampusID(pad8(n))
		assert.True(t, id.IsValid(), "expected %q to validate", id)
	}
}

func TestCampusID_RejectsEverythingElse(t *testing.T) {
	bad := []string{
		"",          // empty
		"1234567",   // too short
		"123456789", // too long
		"1234567a",  // trailing letter
		"a2345678",  // leading letter
		"12 45678",  // embedded space
		"12345678 ", // trailing space, 9 chars
		"1234-678",  // punctuation
		"12345678\n",
	}
	for _, s := range bad {
		assert.False(t, CampusID(s).IsValid(), "expected %q to be rejected", s)
	}
}

func pad8(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}

func TestWeekday_IsValid(t *testing.T) {
	for _, d := range Weekdays {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Weekday("Funday").IsValid())
	assert.False(t, Weekday("monday").IsValid(), "day names are case-sensitive identity keys")
}

func TestAvailability_Complete(t *testing.T) {
	assert.False(t, Availability{Day: Monday, StartTime: "09:00"}.Complete())
	assert.True(t, Availability{Day: Monday, StartTime: "09:00", EndTime: "11:00"}.Complete())
}

func TestStudentProfile_CompleteAvailability(t *testing.T) {
	p := StudentProfile{
		Availability: []Availability{
			{Day: Monday, StartTime: "09:00", EndTime: "11:00"},
			{Day: Tuesday, StartTime: "10:00"},
			{Day: Friday, StartTime: "13:00", EndTime: "15:00"},
		},
	}
	complete := p.CompleteAvailability()
	assert.Len(t, complete, 2)
	assert.Equal(t, Monday, complete[0].Day)
	assert.Equal(t, Friday, complete[1].Day)
}

func TestStudentProfile_HasSubject(t *testing.T) {
	p := StudentProfile{PreferredSubjects: []string{"Math", "Science"}}
	assert.True(t, p.HasSubject("math"))
	assert.False(t, p.HasSubject("History"))
}
