// Package advisory implements the static advisory generators: the study-plan
// lookup, subject-specific advice, and the scripted chatbot reply table.
// Everything here is pure, stateless, and deterministic; the "AI" surface of
// the product is a set of immutable lookup tables with documented fallbacks.
package advisory

import (
	"github.com/owl-lion/access-hub/internal/domain/profile"
)

// Plan is the generated study-plan suggestion for one disability.
type Plan struct {
	Strategies []string
	Activities []string
}

// studyPlans maps a primary disability to its canned plan. Keys missing here
// fall back to defaultPlan.
var studyPlans = map[profile.Disability]Plan{
	profile.Dyslexia: {
		Strategies: []string{
			"Use multi-sensory learning approaches",
			"Break down complex information into smaller chunks",
			"Provide visual aids and graphic organizers",
			"Allow extra time for reading and processing",
		},
		Activities: []string{
			"Audio recordings of key concepts",
			"Color-coded notes and materials",
			"Interactive reading exercises",
			"Mind mapping for comprehension",
		},
	},
	profile.ADHD: {
		Strategies: []string{
			"Create structured, predictable routines",
			"Use frequent breaks and movement",
			"Provide clear, step-by-step instructions",
			"Minimize distractions in learning environment",
		},
		Activities: []string{
			"Pomodoro technique for focused study",
			"Interactive and hands-on learning",
			"Goal-setting and progress tracking",
			"Fidget tools during study sessions",
		},
	},
	profile.AutismSpectrum: {
		Strategies: []string{
			"Maintain consistent routines and structure",
			"Use clear, literal communication",
			"Provide advance notice of changes",
			"Incorporate special interests into learning",
		},
		Activities: []string{
			"Visual schedules and checklists",
			"Social stories for new concepts",
			"Sensory-friendly learning environment",
			"Special interest-based examples",
		},
	},
}

// defaultPlan is returned for any disability without a dedicated entry.
var defaultPlan = Plan{
	Strategies: []string{
		"Personalized learning approach based on individual needs",
		"Regular assessment and adjustment of methods",
		"Collaborative goal setting",
		"Strength-based learning strategies",
	},
	Activities: []string{
		"Customized study materials",
		"Regular progress check-ins",
		"Adaptive learning techniques",
		"Peer support integration",
	},
}

// StudyPlan returns the plan for the given disability, or the generic
// default when no dedicated entry exists.
func StudyPlan(disability profile.Disability) Plan {
	if plan, ok := studyPlans[disability]; ok {
		return plan
	}
	return defaultPlan
}

// subjectAdvice maps subject → disability → recommendation. Each subject
// carries its own "default" row; subjects without an entry at all share one
// global fallback.
var subjectAdvice = map[string]map[profile.Disability]string{
	"Math": {
		profile.Dyslexia:       "Use visual representations and manipulatives. Break word problems into steps.",
		profile.ADHD:           "Provide frequent breaks and use interactive problem-solving methods.",
		profile.AutismSpectrum: "Use consistent notation and step-by-step procedures.",
		anyDisability:          "Focus on conceptual understanding with multiple representation methods.",
	},
	"English": {
		profile.Dyslexia:       "Use audio books and text-to-speech tools. Focus on comprehension over spelling.",
		profile.ADHD:           "Break reading into shorter segments with discussion breaks.",
		profile.AutismSpectrum: "Use graphic organizers and visual story maps.",
		anyDisability:          "Emphasize multiple ways to express understanding and ideas.",
	},
	"Science": {
		profile.Dyslexia:       "Use hands-on experiments and visual diagrams to explain concepts.",
		profile.ADHD:           "Incorporate movement and interactive demonstrations.",
		profile.AutismSpectrum: "Provide clear procedures and predictable lab routines.",
		anyDisability:          "Use inquiry-based learning with multiple modalities.",
	},
}

// anyDisability is the per-subject fallback key.
const anyDisability = profile.Disability("default")

// subjectAdviceFallback is returned when neither the subject nor its default
// row resolves.
const subjectAdviceFallback = "Adapt teaching methods to match individual learning preferences and needs."

// SubjectAdvice returns the recommendation for a subject/disability pair,
// falling back first to the subject's default row and then to the global
// fallback.
func SubjectAdvice(subject string, disability profile.Disability) string {
	row, ok := subjectAdvice[subject]
	if !ok {
		return subjectAdviceFallback
	}
	if advice, ok := row[disability]; ok {
		return advice
	}
	if advice, ok := row[anyDisability]; ok {
		return advice
	}
	return subjectAdviceFallback
}

// disabilityTips holds the short per-disability coaching notes used by the
// tutor-side chatbot.
var disabilityTips = map[profile.Disability]string{
	profile.Dyslexia:           "Use multi-sensory approaches, provide extra time for reading, use visual aids, and break information into smaller chunks.",
	profile.ADHD:               "Keep sessions structured but flexible, use frequent breaks, minimize distractions, and incorporate movement when possible.",
	profile.AutismSpectrum:     "Maintain consistent routines, use clear and literal communication, provide advance notice of changes, and incorporate their special interests.",
	profile.VisualImpairment:   "Use audio descriptions, tactile materials, and ensure good lighting. Describe visual content verbally.",
	profile.HearingImpairment:  "Face the student when speaking, use visual aids, write key points, and ensure good lighting for lip reading.",
	profile.PhysicalDisability: "Ensure accessible seating and materials, allow extra time for physical tasks, and adapt activities as needed.",
}

// disabilityTipsFallback covers disabilities without a dedicated tip entry.
const disabilityTipsFallback = "Focus on the student's individual strengths, communicate openly about what works, and adjust methods based on their feedback."

// DisabilityTips returns the coaching note for the given disability.
func DisabilityTips(disability profile.Disability) string {
	if tip, ok := disabilityTips[disability]; ok {
		return tip
	}
	return disabilityTipsFallback
}
