package profile

import (
	"github.com/owl-lion/access-hub/internal/domain/shared"
)

// Form field names used as RegistrationErrors keys. They match the backend's
// JSON field names so 422 detail entries land on the right field.
const (
	FieldStudentID     = "student_id"
	FieldDisplayName   = "display_name"
	FieldEmail         = "email"
	FieldDisability    = "primary_disability"
	FieldLearningStyle = "learning_style"
	FieldRole          = "role"
)

// RegistrationErrors maps a form field name to a human-readable validation
// message. It is recomputed on every validation pass and cleared per-field
// as the user edits that field.
type RegistrationErrors map[string]string

// Set records a message for a field.
func (e RegistrationErrors) Set(field, msg string) { e[field] = msg }

// ClearField removes the message for one field, if any.
func (e RegistrationErrors) ClearField(field string) { delete(e, field) }

// Empty reports whether no field currently has an error.
func (e RegistrationErrors) Empty() bool { return len(e) == 0 }

// SetName identifies one of the set-valued profile fields.
type SetName string

const (
	// AccommodationsSet is the accommodations_needed field.
	AccommodationsSet SetName = "accommodations_needed"
	// SubjectsSet is the preferred_subjects field.
	SubjectsSet SetName = "preferred_subjects"
)

// Draft holds an in-progress StudentProfile plus its field errors. It is the
// registration form state machine: every edit mutates exactly one field and
// clears that field's error; validation recomputes the whole error map.
type Draft struct {
	profile   StudentProfile
	errors    RegistrationErrors
	finalized bool
}

// NewDraft creates an empty draft.
func NewDraft() *Draft {
	return &Draft{errors: make(RegistrationErrors)}
}

// Profile returns a copy of the current draft contents.
func (d *Draft) Profile() StudentProfile { return d.profile }

// Errors returns the current field errors.
func (d *Draft) Errors() RegistrationErrors { return d.errors }

// Finalized reports whether the draft has been successfully submitted.
func (d *Draft) Finalized() bool { return d.finalized }

// Replace overwrites the entire draft with a fetched profile. Used when an
// already-known user re-opens the form. Field errors are reset.
func (d *Draft) Replace(p StudentProfile) {
	d.profile = p
	d.errors = make(RegistrationErrors)
}

// SetStudentID updates the campus ID, keeping only the first 8 digits the
// way the form input does, and clears the field's error.
func (d *Draft) SetStudentID(raw string) {
	digits := make([]byte, 0, 8)
	for i := 0; i < len(raw) && len(digits) < 8; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	d.profile.StudentID = CampusID(digits)
	d.errors.ClearField(FieldStudentID)
}

// SetDisplayName updates the display name.
func (d *Draft) SetDisplayName(name string) {
	d.profile.DisplayName = name
	d.errors.ClearField(FieldDisplayName)
}

// SetEmail updates the email address.
func (d *Draft) SetEmail(email string) {
	d.profile.Email = email
	d.errors.ClearField(FieldEmail)
}

// SetDisability updates the primary disability.
func (d *Draft) SetDisability(disability Disability) {
	d.profile.PrimaryDisability = disability
	d.errors.ClearField(FieldDisability)
}

// SetLearningStyle updates the learning style preference.
func (d *Draft) SetLearningStyle(style string) {
	d.profile.LearningPreferences.Style = style
	d.errors.ClearField(FieldLearningStyle)
}

// SetLearningFormat updates the session format preference.
func (d *Draft) SetLearningFormat(format string) {
	d.profile.LearningPreferences.Format = format
}

// SetModality updates the modality preference.
func (d *Draft) SetModality(modality string) {
	d.profile.LearningPreferences.Modality = modality
}

// SetAdditionalInfo updates the free-text notes.
func (d *Draft) SetAdditionalInfo(info string) {
	d.profile.AdditionalInfo = info
}

// ToggleSetMember adds or removes a value from one of the set-valued fields.
// Adding a value already present and removing an absent value are both
// no-ops on the set's contents.
func (d *Draft) ToggleSetMember(set SetName, value string, included bool) {
	var target *[]string
	switch set {
	case AccommodationsSet:
		target = &d.profile.AccommodationsNeeded
	case SubjectsSet:
		target = &d.profile.PreferredSubjects
	default:
		return
	}

	idx := -1
	for i, v := range *target {
		if v == value {
			idx = i
			break
		}
	}

	if included && idx < 0 {
		*target = append(*target, value)
	}
	if !included && idx >= 0 {
		*target = append((*target)[:idx], (*target)[idx+1:]...)
	}
}

// SetAvailability upserts the single availability entry for the given day.
// An existing entry keeps its other time bound; a new entry is created with
// the other bound empty. The weekday is the identity key, so a profile never
// holds two entries for the same day.
func (d *Draft) SetAvailability(day Weekday, bound TimeBound, value string) error {
	if !day.IsValid() {
		return shared.ErrUnknownWeekday
	}

	for i := range d.profile.Availability {
		if d.profile.Availability[i].Day == day {
			if bound == StartTime {
				d.profile.Availability[i].StartTime = value
			} else {
				d.profile.Availability[i].EndTime = value
			}
			return nil
		}
	}

	entry := Availability{Day: day}
	if bound == StartTime {
		entry.StartTime = value
	} else {
		entry.EndTime = value
	}
	d.profile.Availability = append(d.profile.Availability, entry)
	return nil
}

// AddFiles appends file handles to the upload list. No de-duplication.
func (d *Draft) AddFiles(files []FileHandle) {
	d.profile.UploadedFiles = append(d.profile.UploadedFiles, files...)
}

// RemoveFile removes the file at the given position.
func (d *Draft) RemoveFile(index int) error {
	if index < 0 || index >= len(d.profile.UploadedFiles) {
		return shared.ErrFileIndexOutOfRange
	}
	d.profile.UploadedFiles = append(
		d.profile.UploadedFiles[:index],
		d.profile.UploadedFiles[index+1:]...,
	)
	return nil
}

// Validate recomputes the error map for the submit gate: the campus ID must
// be exactly 8 digits, the primary disability must be chosen, and a learning
// style must be picked. Returns nil when the draft may be submitted.
func (d *Draft) Validate() RegistrationErrors {
	errs := make(RegistrationErrors)
	if !d.profile.StudentID.IsValid() {
		errs.Set(FieldStudentID, "Please enter a valid 8-digit campus ID")
	}
	if d.profile.PrimaryDisability == "" {
		errs.Set(FieldDisability, "Please select your primary disability")
	}
	if d.profile.LearningPreferences.Style == "" {
		errs.Set(FieldLearningStyle, "Please select a learning style")
	}
	d.errors = errs
	if errs.Empty() {
		return nil
	}
	return errs
}

// Finalize freezes the draft after a successful submission.
func (d *Draft) Finalize() {
	d.finalized = true
}
