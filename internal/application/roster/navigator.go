// Package roster implements the tutor-side list-then-detail navigation over
// matched student records.
package roster

import (
	"context"
	"log/slog"

	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/internal/domain/session"
	"github.com/owl-lion/access-hub/internal/domain/shared"
	"github.com/owl-lion/access-hub/pkg/logger"
)

// Backend is the slice of the platform client the navigator needs.
type Backend interface {
	ListStudents(ctx context.Context) ([]profile.StudentProfile, error)
}

// Navigator is the two-state roster view: Listing holds the fetched roster
// and Detail holds one selected entry. The roster is fetched exactly once on
// entry; going back clears the selection without refetching.
type Navigator struct {
	backend Backend
	logger  *slog.Logger

	students []profile.StudentProfile
	selected *profile.StudentProfile
	loaded   bool
}

// NewNavigator creates a navigator in the (not yet fetched) Listing state.
func NewNavigator(backend Backend, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{backend: backend, logger: logger}
}

// Enter fetches the roster once. An empty roster is a valid, displayed state
// ("no students yet"), not an error; only a failed fetch is an error.
// Calling Enter again is a no-op — the listing never refetches.
func (n *Navigator) Enter(ctx context.Context) error {
	if n.loaded {
		return nil
	}

	students, err := n.backend.ListStudents(ctx)
	if err != nil {
		return shared.WrapError("roster", "Enter", shared.ErrExternalService,
			"roster fetch failed", err)
	}

	n.students = students
	n.loaded = true
	n.logger.Info("roster loaded", logger.Count("students", len(students)))
	return nil
}

// Students returns the fetched roster (empty until Enter succeeds).
func (n *Navigator) Students() []profile.StudentProfile {
	return n.students
}

// Empty reports whether the loaded roster has no entries.
func (n *Navigator) Empty() bool {
	return n.loaded && len(n.students) == 0
}

// Select moves to the Detail state for one roster entry.
func (n *Navigator) Select(studentID string) error {
	for i := range n.students {
		if n.students[i].StudentID.String() == studentID {
			n.selected = &n.students[i]
			return nil
		}
	}
	return shared.NewDomainError("roster", "Select", shared.ErrNotFound,
		"student not in roster")
}

// Selected returns the current detail entry, or nil in the Listing state.
func (n *Navigator) Selected() *profile.StudentProfile {
	return n.selected
}

// Back clears the selection and returns to the Listing state. The roster
// already in memory is reused, not refetched.
func (n *Navigator) Back() {
	n.selected = nil
}

// View reports the navigator's current screen as a session view.
func (n *Navigator) View() session.View {
	if n.selected != nil {
		return session.TutorDetail(n.selected.StudentID.String())
	}
	return session.TutorListing()
}
