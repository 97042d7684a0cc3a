package advisory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-lion/access-hub/internal/domain/profile"
)

func TestStudyPlan_DedicatedAndDefault(t *testing.T) {
	plan := StudyPlan(profile.Dyslexia)
	require.Len(t, plan.Strategies, 4)
	assert.Contains(t, plan.Strategies[0], "multi-sensory")

	// Disabilities without a dedicated plan share one documented default.
	fallback := StudyPlan(profile.VisualImpairment)
	assert.Equal(t, StudyPlan(profile.OtherDisability), fallback)
	assert.Contains(t, fallback.Strategies[0], "Personalized")
}

func TestSubjectAdvice_FallbackChain(t *testing.T) {
	// Exact subject/disability pair.
	assert.Contains(t, SubjectAdvice("Math", profile.Dyslexia), "manipulatives")

	// Known subject, disability without a row → the subject's default.
	assert.Contains(t, SubjectAdvice("Math", profile.HearingImpairment), "conceptual understanding")

	// Unknown subject → global fallback.
	assert.Equal(t, subjectAdviceFallback, SubjectAdvice("History", profile.Dyslexia))
}

func TestDisabilityTips_Fallback(t *testing.T) {
	assert.Contains(t, DisabilityTips(profile.ADHD), "structured but flexible")
	assert.Equal(t, disabilityTipsFallback, DisabilityTips(profile.OtherDisability))
}

func TestReply_StudentRules_FirstMatchWins(t *testing.T) {
	ctx := Context{}

	// "tutor" appears before "schedule" in the table; with both keywords
	// present the first rule answers.
	reply := Reply("When will my tutor contact me about the schedule?", ctx)
	assert.Contains(t, reply, "match you with a tutor")

	assert.Contains(t, Reply("what TIME works", ctx), "availability preferences")
	assert.Contains(t, Reply("do I get my accommodationS?", ctx), "trained in disability accommodations")
	assert.Contains(t, Reply("I need some support", ctx), "support@fhda.edu")
}

func TestReply_StudentDefault(t *testing.T) {
	assert.Equal(t, studentFallback, Reply("what's the weather like", Context{}))
}

func tutorContext() Context {
	return Context{Student: &profile.StudentProfile{
		StudentID:            "12345678",
		DisplayName:          "Jordan",
		PrimaryDisability:    profile.ADHD,
		AccommodationsNeeded: []string{"Flexible scheduling", "Assistive technology"},
		LearningPreferences: profile.LearningPreferences{
			Style:    "Visual Learning",
			Format:   "1-on-1",
			Modality: "Online",
		},
		PreferredSubjects: []string{"Math", "Science"},
		Availability: []profile.Availability{
			{Day: profile.Monday, StartTime: "09:00", EndTime: "11:00"},
			{Day: profile.Tuesday, StartTime: "10:00"}, // incomplete, excluded
		},
	}}
}

func TestReply_TutorRules_UseStudentContext(t *testing.T) {
	ctx := tutorContext()

	reply := Reply("what accommodations do they need?", ctx)
	assert.Contains(t, reply, "Jordan needs these accommodations")
	assert.Contains(t, reply, "Flexible scheduling, Assistive technology")

	reply = Reply("what do they prefer?", ctx)
	assert.Contains(t, reply, "visual learning")
	assert.Contains(t, reply, "1-on-1")
	assert.Contains(t, reply, "online")

	reply = Reply("tell me about adhd", ctx)
	assert.Contains(t, reply, "For ADHD")
	assert.Contains(t, reply, "frequent breaks")

	reply = Reply("which subjects?", ctx)
	assert.Contains(t, reply, "Math, Science")

	reply = Reply("what's their schedule?", ctx)
	assert.Contains(t, reply, "Monday 09:00-11:00")
	assert.False(t, strings.Contains(reply, "Tuesday"), "incomplete windows are not offered")
}

func TestReply_TutorSchedule_NoAvailability(t *testing.T) {
	ctx := Context{Student: &profile.StudentProfile{DisplayName: "Sam", PrimaryDisability: profile.Dyslexia}}
	assert.Contains(t, Reply("when do they have time?", ctx), "hasn't specified their availability")
}

func TestReply_TutorDefault(t *testing.T) {
	assert.Equal(t, tutorFallback, Reply("any random question", tutorContext()))
}

func TestGreeting(t *testing.T) {
	assert.Contains(t, Greeting(Context{}), "your tutoring experience")
	assert.Contains(t, Greeting(tutorContext()), "Jordan's learning needs")
}

func TestReply_IsDeterministic(t *testing.T) {
	ctx := tutorContext()
	first := Reply("accommodations?", ctx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Reply("accommodations?", ctx))
	}
}
