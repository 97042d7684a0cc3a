package advisory

import (
	"fmt"
	"strings"

	"github.com/owl-lion/access-hub/internal/domain/profile"
)

// Context carries the data a rule may draw on when composing a reply. The
// student is nil for the student-facing bot and set to the selected roster
// entry for the tutor-facing one.
type Context struct {
	Student *profile.StudentProfile
}

// Rule is one entry of the ordered reply table: a predicate over the
// lowercased utterance plus a response builder. Rules are evaluated
// top-to-bottom and the first match wins.
type Rule struct {
	Match   func(input string, ctx Context) bool
	Respond func(ctx Context) string
}

// keywords builds a predicate matching any of the given substrings.
func keywords(words ...string) func(string, Context) bool {
	return func(input string, _ Context) bool {
		for _, w := range words {
			if strings.Contains(input, w) {
				return true
			}
		}
		return false
	}
}

// canned builds a response that ignores the context.
func canned(text string) func(Context) string {
	return func(Context) string { return text }
}

// studentRules answer a registered student's questions about what happens
// next. Order matters.
var studentRules = []Rule{
	{
		Match: keywords("tutor", "match"),
		Respond: canned("Great question! Based on your registration, we'll match you with a tutor " +
			"who has experience with your specific disability and learning preferences. " +
			"This usually takes 1-2 business days."),
	},
	{
		Match: keywords("schedule", "time"),
		Respond: canned("Your tutor will work with your availability preferences that you provided. " +
			"You can always update your schedule by contacting us or through your tutor directly."),
	},
	{
		Match: keywords("accommodation"),
		Respond: canned("All our tutors are trained in disability accommodations. Your specific needs " +
			"have been noted and will be shared with your matched tutor to ensure the best " +
			"learning experience."),
	},
	{
		Match: keywords("help", "support"),
		Respond: canned("I'm here to help! You can also reach out to our support team at " +
			"support@fhda.edu or visit the Disability Support Services office on campus."),
	},
}

// studentFallback is the student-side default reply.
const studentFallback = "That's a great question! While I work on getting you a more detailed answer, " +
	"feel free to contact our support team at support@fhda.edu for immediate assistance."

// tutorRules answer a tutor's questions about the selected student. Every
// response draws on the student profile in the context.
var tutorRules = []Rule{
	{
		Match: keywords("accommodation", "need"),
		Respond: func(ctx Context) string {
			return fmt.Sprintf("%s needs these accommodations: %s. Make sure to implement these "+
				"consistently in your tutoring sessions.",
				ctx.Student.DisplayName, strings.Join(ctx.Student.AccommodationsNeeded, ", "))
		},
	},
	{
		Match: keywords("learning style", "prefer"),
		Respond: func(ctx Context) string {
			prefs := ctx.Student.LearningPreferences
			return fmt.Sprintf("This student learns best through %s methods in a %s setting. "+
				"They prefer %s sessions.",
				strings.ToLower(prefs.Style), strings.ToLower(prefs.Format), strings.ToLower(prefs.Modality))
		},
	},
	{
		// Matches the word "disability" or the student's own disability name.
		Match: func(input string, ctx Context) bool {
			if strings.Contains(input, "disability") {
				return true
			}
			return strings.Contains(input, strings.ToLower(string(ctx.Student.PrimaryDisability)))
		},
		Respond: func(ctx Context) string {
			return fmt.Sprintf("For %s, here are some key tips: %s",
				ctx.Student.PrimaryDisability, DisabilityTips(ctx.Student.PrimaryDisability))
		},
	},
	{
		Match: keywords("subject", "topic"),
		Respond: func(ctx Context) string {
			return fmt.Sprintf("The student is interested in: %s. Focus on these areas and connect "+
				"new concepts to their interests when possible.",
				strings.Join(ctx.Student.PreferredSubjects, ", "))
		},
	},
	{
		Match: keywords("time", "schedule"),
		Respond: func(ctx Context) string {
			slots := ctx.Student.CompleteAvailability()
			if len(slots) == 0 {
				return "The student hasn't specified their availability yet. You may want to " +
					"discuss scheduling directly with them."
			}
			parts := make([]string, len(slots))
			for i, s := range slots {
				parts[i] = fmt.Sprintf("%s %s-%s", s.Day, s.StartTime, s.EndTime)
			}
			return fmt.Sprintf("The student is available on: %s.", strings.Join(parts, ", "))
		},
	},
	{
		Match: keywords("help", "support"),
		Respond: canned("I can help you understand the student's needs, suggest teaching strategies, " +
			"or clarify their accommodations. What specific aspect would you like to know more about?"),
	},
}

// tutorFallback is the tutor-side default reply.
const tutorFallback = "That's a great question! Based on the student's profile, I'd recommend focusing " +
	"on their preferred learning style and ensuring all accommodations are met. Is there a specific " +
	"aspect of their learning needs you'd like me to elaborate on?"

// Reply evaluates the utterance against the rule table for the given
// context: the tutor table when a student profile is attached, the student
// table otherwise. Matching is case-insensitive substring matching; the
// first matching rule wins and a default reply covers everything else.
func Reply(utterance string, ctx Context) string {
	input := strings.ToLower(utterance)

	rules, fallback := studentRules, studentFallback
	if ctx.Student != nil {
		rules, fallback = tutorRules, tutorFallback
	}

	for _, rule := range rules {
		if rule.Match(input, ctx) {
			return rule.Respond(ctx)
		}
	}
	return fallback
}

// Greeting returns the bot's opening message for the given context.
func Greeting(ctx Context) string {
	if ctx.Student != nil {
		return fmt.Sprintf("Hi! I'm here to help you understand %s's learning needs and answer any "+
			"questions about their accommodations or preferences. What would you like to know?",
			ctx.Student.DisplayName)
	}
	return "Hi! I'm here to help answer any questions about your tutoring experience. " +
		"What would you like to know?"
}
