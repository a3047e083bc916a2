// Package intent provides pattern-based intent classification and entity
// extraction over free-form chat messages.
package intent

import "regexp"

// Intent is the coarse category of help a user is requesting.
type Intent string

// Recognized intents. IntentNone means no rule matched.
const (
	IntentCareerAnalysis Intent = "career_analysis"
	IntentResumeReview   Intent = "resume_review"
	IntentJobMatch       Intent = "job_match"
	IntentMockInterview  Intent = "mock_interview"
	IntentSkillGap       Intent = "skill_gap"
	IntentGreeting       Intent = "greeting"
	IntentPersonalCheck  Intent = "personal_check"
	IntentCasualChat     Intent = "casual_chat"
	IntentNone           Intent = "none"
)

// IsTask reports whether the intent maps to a coaching task that needs
// structured input, as opposed to conversational intents.
func (i Intent) IsTask() bool {
	switch i {
	case IntentCareerAnalysis, IntentResumeReview, IntentJobMatch, IntentMockInterview, IntentSkillGap:
		return true
	default:
		return false
	}
}

// Classifier determines a user's intent from raw message text. Implementations
// must be pure: identical input yields identical output.
type Classifier interface {
	Classify(message string) (Intent, float64)
}

type labelRules struct {
	intent Intent
	rules  []*regexp.Regexp
}

// PatternClassifier classifies messages by matching an ordered list of
// case-insensitive regular expression rules per intent. Confidence is the
// length of the longest matched substring divided by the message length, so
// matches occupying a larger fraction of the message score higher. It is a
// coarse proxy, not a probability; callers treat roughly >0.4 as confident.
type PatternClassifier struct {
	labels []labelRules
}

// NewPatternClassifier returns a classifier with the default rule set.
func NewPatternClassifier() *PatternClassifier {
	compile := func(exprs ...string) []*regexp.Regexp {
		rules := make([]*regexp.Regexp, 0, len(exprs))
		for _, e := range exprs {
			rules = append(rules, regexp.MustCompile("(?i)"+e))
		}
		return rules
	}

	return &PatternClassifier{labels: []labelRules{
		{IntentCareerAnalysis, compile(
			`what career|career path|job opportunities|career advice`,
			`my skills? (?:is|are|include)`,
			`recommend.*career|suggest.*career`,
			`i know [\w\s,]+`,
			`\d+\s*years?\s+(?:of\s+)?[\w\s]*experience`,
		)},
		{IntentResumeReview, compile(
			`review.*resume|check.*resume`,
			`improve.*resume|resume.*feedback`,
			`cv.*review|review.*cv`,
		)},
		{IntentJobMatch, compile(
			`find.*job|job.*match`,
			`looking for.*job|job.*opportunit`,
			`job.*search|search.*job`,
		)},
		{IntentMockInterview, compile(
			`interview.*practice|practice.*interview`,
			`mock.*interview|prepare.*interview`,
			`interview.*question`,
		)},
		{IntentSkillGap, compile(
			`skill.*gap|missing.*skills`,
			`learn.*skills|improve.*skills`,
			`what.*skills.*need`,
		)},
		{IntentGreeting, compile(
			`^hi$|^hello$|^hey$`,
			`^good\s*(?:morning|afternoon|evening)`,
			`help me|assist me|can you help`,
		)},
		{IntentPersonalCheck, compile(
			`how are you|how's it going|how is it going`,
			`how(?:'s| is) your day`,
		)},
		{IntentCasualChat, compile(
			`\bweather\b|\bweekend\b`,
			`what's up|whats up|tell me a joke`,
		)},
	}}
}

// Classify returns the highest-confidence intent for the message, or
// (IntentNone, 0) when no rule matches. Ties keep the first label/rule in
// evaluation order. Confidence is always recomputed; nothing is cached.
func (c *PatternClassifier) Classify(message string) (Intent, float64) {
	if len(message) == 0 {
		return IntentNone, 0
	}

	best := IntentNone
	maxConfidence := 0.0

	for _, label := range c.labels {
		for _, rule := range label.rules {
			matches := rule.FindAllString(message, -1)
			if len(matches) == 0 {
				continue
			}
			longest := 0
			for _, m := range matches {
				if len(m) > longest {
					longest = len(m)
				}
			}
			confidence := float64(longest) / float64(len(message))
			if confidence > maxConfidence {
				maxConfidence = confidence
				best = label.intent
			}
		}
	}

	return best, maxConfidence
}
