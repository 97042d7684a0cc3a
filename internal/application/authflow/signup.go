package authflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/internal/domain/session"
	"github.com/owl-lion/access-hub/internal/infrastructure/external/platform"
	"github.com/owl-lion/access-hub/pkg/logger"
)

// BackendRegistration is the slice of the platform client sign-up needs.
type BackendRegistration interface {
	Register(ctx context.Context, signUp platform.SignUp) error
}

// SignUpForm is the account registration form. Validation here is the
// client-side gate; the backend revalidates and may answer with structured
// field errors of its own. Note the identifier rule is numeric-only — the
// stricter 8-digit rule belongs to the student profile form, not to account
// creation.
type SignUpForm struct {
	UserID      string `validate:"required,numeric"`
	DisplayName string `validate:"required"`
	Email       string `validate:"required,email"`
	Role        string `validate:"required,oneof=student tutor"`
}

// formFields maps struct field names to RegistrationErrors keys.
var formFields = map[string]string{
	"UserID":      profile.FieldStudentID,
	"DisplayName": profile.FieldDisplayName,
	"Email":       profile.FieldEmail,
	"Role":        profile.FieldRole,
}

// SignUpService runs the account registration sub-path. It is independent of
// the login machine: an account can be created before any token exists.
type SignUpService struct {
	backend  BackendRegistration
	validate *validator.Validate
	logger   *slog.Logger
}

// NewSignUpService creates the sign-up service.
func NewSignUpService(backend BackendRegistration, logger *slog.Logger) *SignUpService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignUpService{
		backend:  backend,
		validate: validator.New(),
		logger:   logger,
	}
}

// Submit validates the form and posts it to the registration endpoint.
// The returned RegistrationErrors is nil on success. Client-side failures
// and structured 422 responses land on their fields; any other failure
// becomes one generic message attached to the role field.
func (s *SignUpService) Submit(ctx context.Context, form SignUpForm) profile.RegistrationErrors {
	if errs := s.clientValidate(form); !errs.Empty() {
		return errs
	}

	err := s.backend.Register(ctx, platform.SignUp{
		UserID:      form.UserID,
		DisplayName: form.DisplayName,
		Email:       form.Email,
		Role:        session.ParseRole(form.Role),
	})
	if err == nil {
		s.logger.Info("account registered", logger.UserID(form.UserID), logger.RoleName(form.Role))
		return nil
	}

	var validationErr *platform.ValidationError
	if errors.As(err, &validationErr) {
		errs := make(profile.RegistrationErrors, len(validationErr.Fields))
		for field, msg := range validationErr.Fields {
			errs.Set(field, msg)
		}
		return errs
	}

	s.logger.Warn("account registration failed", logger.Err(err))
	errs := make(profile.RegistrationErrors)
	errs.Set(profile.FieldRole, "Registration failed. Please try again.")
	return errs
}

// clientValidate maps validator failures onto form fields.
func (s *SignUpService) clientValidate(form SignUpForm) profile.RegistrationErrors {
	errs := make(profile.RegistrationErrors)

	err := s.validate.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Set(profile.FieldRole, "Registration failed. Please try again.")
		return errs
	}

	for _, fe := range fieldErrs {
		field, ok := formFields[fe.StructField()]
		if !ok {
			field = profile.FieldRole
		}
		switch fe.ActualTag() {
		case "required":
			errs.Set(field, "This field is required")
		case "numeric":
			errs.Set(field, "Must contain digits only")
		case "email":
			errs.Set(field, "Must be a valid email address")
		case "oneof":
			errs.Set(field, "Choose either student or tutor")
		default:
			errs.Set(field, "Invalid value")
		}
	}
	return errs
}
