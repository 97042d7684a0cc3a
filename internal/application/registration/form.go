// Package registration orchestrates the student profile form: prefilling an
// existing record, gating submission on the draft's validation rules, and
// mapping collaborator failures onto user-facing messages.
package registration

import (
	"context"
	"log/slog"

	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/pkg/logger"
)

// Backend is the slice of the platform client the form needs.
type Backend interface {
	GetStudent(ctx context.Context, studentID string) (*profile.StudentProfile, error)
	SaveStudent(ctx context.Context, p profile.StudentProfile) (*profile.StudentProfile, error)
}

// Result is the outcome of a submission attempt.
type Result struct {
	// Errors holds field-level validation messages, nil when none.
	Errors profile.RegistrationErrors

	// Message is the user-facing summary; empty on success.
	Message string

	// Profile is the record echoed back by the backend on success.
	Profile *profile.StudentProfile
}

// OK reports whether the submission went through.
func (r Result) OK() bool { return r.Message == "" }

// Form drives one student's registration session. The draft stays editable
// across failed attempts; only a successful submission freezes it.
type Form struct {
	draft   *profile.Draft
	backend Backend
	logger  *slog.Logger

	// onFinalized signals downstream on success: the completion
	// acknowledgment and the advisory chatbot are revealed.
	onFinalized func(profile.StudentProfile)
}

// NewForm creates a registration form around an empty draft.
func NewForm(backend Backend, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	return &Form{
		draft:   profile.NewDraft(),
		backend: backend,
		logger:  logger,
	}
}

// Draft exposes the underlying form state machine for field edits.
func (f *Form) Draft() *profile.Draft { return f.draft }

// OnFinalized registers the downstream signal fired after a successful
// submission.
func (f *Form) OnFinalized(fn func(profile.StudentProfile)) {
	f.onFinalized = fn
}

// Mount prefills the draft for an already-known user: one fetch, and the
// fetched record overwrites the entire draft. A fetch failure leaves the
// blank draft in place — first-time students have no record yet, so this is
// the expected path, not an error.
func (f *Form) Mount(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	existing, err := f.backend.GetStudent(ctx, userID)
	if err != nil {
		f.logger.Debug("no existing profile to prefill", logger.UserID(userID), logger.Err(err))
		return
	}
	f.draft.Replace(*existing)
	f.logger.Info("profile prefilled", logger.StudentID(existing.StudentID.String()))
}

// ValidateAndSubmit runs the submit gate and, when it passes, forwards the
// complete draft (file handles included) to the backend.
//
//   - Validation failure: the collaborator is never called; field errors and
//     a summary message are surfaced.
//   - Collaborator rejection (network error or non-2xx): a generic failure
//     message is surfaced and the draft stays intact for resubmission.
//   - Success: the draft is finalized and the downstream signal fires.
func (f *Form) ValidateAndSubmit(ctx context.Context) Result {
	if errs := f.draft.Validate(); errs != nil {
		return Result{
			Errors:  errs,
			Message: "Please fix the highlighted fields before submitting.",
		}
	}

	submitted := f.draft.Profile()
	saved, err := f.backend.SaveStudent(ctx, submitted)
	if err != nil {
		f.logger.Warn("profile submission rejected", logger.Err(err))
		return Result{
			Message: "We couldn't submit your registration. Please try again.",
		}
	}

	f.draft.Finalize()
	f.logger.Info("profile submitted", logger.StudentID(submitted.StudentID.String()))

	if f.onFinalized != nil {
		f.onFinalized(*saved)
	}
	return Result{Profile: saved}
}
