package session

// ViewKind tags the View variant currently on screen.
type ViewKind int

const (
	// ViewUnauthenticated shows the sign-in / sign-up choice.
	ViewUnauthenticated ViewKind = iota
	// ViewStudent shows the student registration flow.
	ViewStudent
	// ViewTutorListing shows the tutor's roster of matched students.
	ViewTutorListing
	// ViewTutorDetail shows a single selected student.
	ViewTutorDetail
)

// String returns the view kind name for logging.
func (k ViewKind) String() string {
	switch k {
	case ViewUnauthenticated:
		return "unauthenticated"
	case ViewStudent:
		return "student"
	case ViewTutorListing:
		return "tutor-listing"
	case ViewTutorDetail:
		return "tutor-detail"
	default:
		return "unknown"
	}
}

// View is a tagged union over the mutually exclusive top-level screens.
// SelectedID is meaningful only for ViewTutorDetail, which makes states like
// "tutor with a detail selection but no roster" unrepresentable.
type View struct {
	Kind       ViewKind
	SelectedID string
}

// Unauthenticated returns the signed-out view.
func Unauthenticated() View { return View{Kind: ViewUnauthenticated} }

// StudentView returns the student-side view.
func StudentView() View { return View{Kind: ViewStudent} }

// TutorListing returns the tutor roster view.
func TutorListing() View { return View{Kind: ViewTutorListing} }

// TutorDetail returns the tutor detail view for one roster entry.
func TutorDetail(studentID string) View {
	return View{Kind: ViewTutorDetail, SelectedID: studentID}
}

// Route is the role router: a pure function of the session producing the
// top-level view. It carries no transition logic of its own and is
// re-evaluated on every session change. A tutor always lands on the listing;
// detail selection is a navigator concern, not a routing one.
func Route(s *Session) View {
	switch s.Role() {
	case RoleStudent:
		return StudentView()
	case RoleTutor:
		return TutorListing()
	default:
		return Unauthenticated()
	}
}
