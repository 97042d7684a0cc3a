package platform

// LoginRequestDTO is the body of POST /api/auth/login.
type LoginRequestDTO struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

// LoginResponseDTO is the success body of POST /api/auth/login.
type LoginResponseDTO struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

// IdentityDTO is the body of GET /api/auth/me.
type IdentityDTO struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// RegisterRequestDTO is the body of POST /api/auth/register.
type RegisterRequestDTO struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// FieldErrorDTO is one entry of a 422 response's detail list. Loc is a path
// into the request body; its last element is the field name.
type FieldErrorDTO struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

// ValidationResponseDTO is the body of a 422 response.
type ValidationResponseDTO struct {
	Detail []FieldErrorDTO `json:"detail"`
}

// LearningPreferencesDTO mirrors the learning_preferences object.
type LearningPreferencesDTO struct {
	Style    string `json:"style"`
	Format   string `json:"format"`
	Modality string `json:"modality"`
}

// AvailabilityDTO mirrors one availability entry.
type AvailabilityDTO struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// FileHandleDTO mirrors one uploaded file handle.
type FileHandleDTO struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// StudentDTO mirrors the StudentProfile JSON exchanged with the backend.
type StudentDTO struct {
	StudentID            string                 `json:"student_id"`
	DisplayName          string                 `json:"display_name"`
	Email                string                 `json:"email"`
	PrimaryDisability    string                 `json:"primary_disability"`
	AccommodationsNeeded []string               `json:"accommodations_needed"`
	LearningPreferences  LearningPreferencesDTO `json:"learning_preferences"`
	Availability         []AvailabilityDTO      `json:"availability"`
	PreferredSubjects    []string               `json:"preferred_subjects"`
	AdditionalInfo       string                 `json:"additional_info"`
	UploadedFiles        []FileHandleDTO        `json:"uploaded_files,omitempty"`
}
