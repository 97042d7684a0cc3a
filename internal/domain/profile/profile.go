// Package profile contains the student profile domain model: the fixed
// enumerations offered by the registration form, the 8-digit campus ID value
// object, weekly availability, and the profile entity itself.
package profile

import (
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// CampusID is the authoritative student identifier assigned by the college.
// It is exactly 8 decimal digits.
type CampusID string

// IsValid reports whether the ID is exactly 8 decimal digits.
func (id CampusID) IsValid() bool {
	if len(id) != 8 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the string representation of the ID.
func (id CampusID) String() string {
	return string(id)
}

// Weekday is a day name as used by the availability schedule.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all seven days in schedule order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid reports whether the weekday is one of the seven day names.
func (d Weekday) IsValid() bool {
	for _, day := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// TimeBound selects which end of an availability window is being set.
type TimeBound int

const (
	// StartTime is the beginning of an availability window.
	StartTime TimeBound = iota
	// EndTime is the end of an availability window.
	EndTime
)

// Availability is one weekly availability window. The weekday is the
// identity key: a profile holds at most one entry per day.
type Availability struct {
	Day       Weekday `json:"day"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
}

// Complete reports whether both bounds are filled in.
func (a Availability) Complete() bool {
	return a.StartTime != "" && a.EndTime != ""
}

// ══════════════════════════════════════════════════════════════════════════════
// ENUMERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// Disability is the student's self-reported primary disability.
type Disability string

const (
	Dyslexia           Disability = "Dyslexia"
	ADHD               Disability = "ADHD"
	AutismSpectrum     Disability = "Autism Spectrum Disorder"
	VisualImpairment   Disability = "Visual Impairment"
	HearingImpairment  Disability = "Hearing Impairment"
	PhysicalDisability Disability = "Physical Disability"
	LearningDisability Disability = "Learning Disability"
	OtherDisability    Disability = "Other"
)

// Disabilities lists the options offered by the registration form.
var Disabilities = []Disability{
	Dyslexia, ADHD, AutismSpectrum, VisualImpairment,
	HearingImpairment, PhysicalDisability, LearningDisability, OtherDisability,
}

// IsValid reports whether the disability is one of the offered options.
func (d Disability) IsValid() bool {
	for _, opt := range Disabilities {
		if d == opt {
			return true
		}
	}
	return false
}

// Accommodations lists the accommodations a student can request.
var Accommodations = []string{
	"Extended time for assignments",
	"Alternative assessment formats",
	"Flexible scheduling",
	"Note-taking assistance",
	"Audio recordings of lectures",
	"Large print materials",
	"Sign language interpreter",
	"Assistive technology",
}

// LearningStyles lists the offered learning styles.
var LearningStyles = []string{
	"Visual Learning", "Auditory Learning", "Hands-on Learning",
	"Reading/Writing", "Combination",
}

// LearningFormats lists the offered session formats.
var LearningFormats = []string{"1-on-1", "Small Group", "Study Group"}

// Modalities lists the offered session modalities.
var Modalities = []string{"In-person", "Online", "Hybrid"}

// Subjects lists the subjects tutoring is offered for.
var Subjects = []string{"Math", "English", "Science", "History", "Computer Science"}

// LearningPreferences groups the three preference choices.
type LearningPreferences struct {
	Style    string `json:"style"`
	Format   string `json:"format"`
	Modality string `json:"modality"`
}

// FileHandle identifies an uploaded file. Contents are forwarded to the
// backend collaborator; this core never stores them.
type FileHandle struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT PROFILE
// ══════════════════════════════════════════════════════════════════════════════

// StudentProfile is the full registration record for one student.
type StudentProfile struct {
	StudentID            CampusID            `json:"student_id"`
	DisplayName          string              `json:"display_name"`
	Email                string              `json:"email"`
	PrimaryDisability    Disability          `json:"primary_disability"`
	AccommodationsNeeded []string            `json:"accommodations_needed"`
	LearningPreferences  LearningPreferences `json:"learning_preferences"`
	Availability         []Availability      `json:"availability"`
	PreferredSubjects    []string            `json:"preferred_subjects"`
	AdditionalInfo       string              `json:"additional_info"`
	UploadedFiles        []FileHandle        `json:"uploaded_files,omitempty"`
}

// AvailabilityFor returns the entry for the given day, if any.
func (p *StudentProfile) AvailabilityFor(day Weekday) (Availability, bool) {
	for _, a := range p.Availability {
		if a.Day == day {
			return a, true
		}
	}
	return Availability{}, false
}

// CompleteAvailability returns only the windows with both bounds set,
// in schedule order.
func (p *StudentProfile) CompleteAvailability() []Availability {
	var out []Availability
	for _, a := range p.Availability {
		if a.Complete() {
			out = append(out, a)
		}
	}
	return out
}

// HasSubject reports whether the subject is among the preferred ones.
func (p *StudentProfile) HasSubject(subject string) bool {
	for _, s := range p.PreferredSubjects {
		if strings.EqualFold(s, subject) {
			return true
		}
	}
	return false
}
