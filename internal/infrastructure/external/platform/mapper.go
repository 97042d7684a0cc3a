package platform

import (
	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/internal/domain/session"
)

// Mapper converts between backend DTOs and domain types.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// StudentFromDTO converts a backend student record to the domain profile.
func (m *Mapper) StudentFromDTO(dto StudentDTO) profile.StudentProfile {
	p := profile.StudentProfile{
		StudentID:            profile.CampusID(dto.StudentID),
		DisplayName:          dto.DisplayName,
		Email:                dto.Email,
		PrimaryDisability:    profile.Disability(dto.PrimaryDisability),
		AccommodationsNeeded: dto.AccommodationsNeeded,
		LearningPreferences: profile.LearningPreferences{
			Style:    dto.LearningPreferences.Style,
			Format:   dto.LearningPreferences.Format,
			Modality: dto.LearningPreferences.Modality,
		},
		PreferredSubjects: dto.PreferredSubjects,
		AdditionalInfo:    dto.AdditionalInfo,
	}
	for _, a := range dto.Availability {
		p.Availability = append(p.Availability, profile.Availability{
			Day:       profile.Weekday(a.Day),
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}
	for _, f := range dto.UploadedFiles {
		p.UploadedFiles = append(p.UploadedFiles, profile.FileHandle{
			Name: f.Name,
			Size: f.Size,
		})
	}
	return p
}

// StudentToDTO converts a domain profile to the backend wire shape.
func (m *Mapper) StudentToDTO(p profile.StudentProfile) StudentDTO {
	dto := StudentDTO{
		StudentID:            string(p.StudentID),
		DisplayName:          p.DisplayName,
		Email:                p.Email,
		PrimaryDisability:    string(p.PrimaryDisability),
		AccommodationsNeeded: p.AccommodationsNeeded,
		LearningPreferences: LearningPreferencesDTO{
			Style:    p.LearningPreferences.Style,
			Format:   p.LearningPreferences.Format,
			Modality: p.LearningPreferences.Modality,
		},
		PreferredSubjects: p.PreferredSubjects,
		AdditionalInfo:    p.AdditionalInfo,
	}
	for _, a := range p.Availability {
		dto.Availability = append(dto.Availability, AvailabilityDTO{
			Day:       string(a.Day),
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}
	for _, f := range p.UploadedFiles {
		dto.UploadedFiles = append(dto.UploadedFiles, FileHandleDTO{
			Name: f.Name,
			Size: f.Size,
		})
	}
	return dto
}

// IdentityFromDTO converts a who-am-I response to session values.
func (m *Mapper) IdentityFromDTO(dto IdentityDTO) (userID string, role session.Role) {
	return dto.UserID, session.ParseRole(dto.Role)
}
