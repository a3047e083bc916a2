// Package validation checks user-supplied input before it reaches a model
// backend. Errors reject the input; warnings are advisory and never block.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-coach/internal/knowledge"
	"github.com/jonathan/career-coach/internal/types"
)

// Limits for user-supplied input.
const (
	MaxResumeLength = 10000
	MaxSkillLength  = 100
	MaxSkillCount   = 50
	MaxRoleLength   = 200
	MaxAnswerLength = 2000
	MaxInputLength  = 10000
	MinResumeLength = 100
	MinAnswerLength = 10
)

// Result carries the outcome of one validation. Warnings do not make the
// input invalid.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the input passed.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Err converts a failed Result into an *Error, nil when valid.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &Error{Message: strings.Join(r.Errors, "; ")}
}

// Skills validates a skills list.
func Skills(skills []string) Result {
	var res Result

	if len(skills) == 0 {
		res.Errors = append(res.Errors, "skills list cannot be empty")
	}
	if len(skills) > MaxSkillCount {
		res.Warnings = append(res.Warnings, "very large skills list, consider focusing on key skills")
	}

	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			res.Errors = append(res.Errors, "empty skill found in list")
			continue
		}
		if len(skill) > MaxSkillLength {
			res.Warnings = append(res.Warnings, fmt.Sprintf("very long skill name: %q", skill[:50]+"..."))
		}
		if skill != strings.TrimSpace(skill) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skill has leading or trailing whitespace: %q", skill))
		}
	}

	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if _, dup := seen[key]; dup {
			res.Warnings = append(res.Warnings, "duplicate skills found")
			break
		}
		seen[key] = struct{}{}
	}

	return res
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ResumeText validates resume content.
func ResumeText(text string) Result {
	var res Result

	if strings.TrimSpace(text) == "" {
		res.Errors = append(res.Errors, "resume text cannot be empty")
	}
	if len(text) > MaxResumeLength {
		res.Errors = append(res.Errors, fmt.Sprintf("resume text too long (%d chars, max %d)", len(text), MaxResumeLength))
	}
	if len(text) < MinResumeLength {
		res.Warnings = append(res.Warnings, "resume text seems very short, may not provide enough context")
	}

	lower := strings.ToLower(text)
	var missing []string
	for _, section := range []string{"experience", "education", "skills"} {
		if !strings.Contains(lower, section) {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		res.Warnings = append(res.Warnings, "resume may be missing sections: "+strings.Join(missing, ", "))
	}

	if !emailPattern.MatchString(text) {
		res.Warnings = append(res.Warnings, "no email address found in resume")
	}
	if !phonePattern.MatchString(text) {
		res.Warnings = append(res.Warnings, "no phone number found in resume")
	}

	return res
}

// TargetRole validates a target role or job title.
func TargetRole(role string) Result {
	var res Result

	if strings.TrimSpace(role) == "" {
		res.Errors = append(res.Errors, "target role cannot be empty")
		return res
	}
	if len(role) > MaxRoleLength {
		res.Warnings = append(res.Warnings, "target role name is very long")
	}
	if len(role) < 3 {
		res.Warnings = append(res.Warnings, "target role name seems too short")
	}
	if role == strings.ToLower(role) {
		res.Warnings = append(res.Warnings, "role name should be properly capitalized")
	}

	return res
}

// InterviewAnswers validates a set of interview answers before evaluation.
func InterviewAnswers(answers []string) Result {
	var res Result

	if len(answers) == 0 {
		res.Errors = append(res.Errors, "no interview answers provided")
	}

	for i, answer := range answers {
		if strings.TrimSpace(answer) == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("answer %d is empty", i+1))
			continue
		}
		if len(answer) < MinAnswerLength {
			res.Warnings = append(res.Warnings, fmt.Sprintf("answer %d is very short, may not provide enough detail", i+1))
		}
		if len(answer) > MaxAnswerLength {
			res.Warnings = append(res.Warnings, fmt.Sprintf("answer %d is very long, consider being more concise", i+1))
		}
	}

	return res
}

var salaryNumberPattern = regexp.MustCompile(`\d+`)

// JobPreferences validates a preference set before job matching. An entirely
// empty set is rejected; questionable field values only warn.
func JobPreferences(prefs types.JobPreferences) Result {
	var res Result

	if len(prefs.Location) == 0 && len(prefs.Industry) == 0 && prefs.SalaryRange == "" && !prefs.RemoteOK {
		res.Errors = append(res.Errors, "job preferences cannot be empty")
		return res
	}

	if prefs.SalaryRange != "" && !salaryNumberPattern.MatchString(prefs.SalaryRange) {
		res.Warnings = append(res.Warnings, "salary range format unclear, use a format like '50k-70k' or '$50,000-$70,000'")
	}
	for _, loc := range prefs.Location {
		if strings.TrimSpace(loc) == "" {
			res.Warnings = append(res.Warnings, "empty location preference")
			break
		}
	}
	for _, ind := range prefs.Industry {
		if strings.TrimSpace(ind) == "" {
			res.Warnings = append(res.Warnings, "empty industry preference")
			break
		}
	}

	return res
}

// ParseSkillGapInput splits a combined "skills | role" input into its parts.
// Skills are comma-separated and trimmed.
func ParseSkillGapInput(input string) (skills []string, role string, err error) {
	if !strings.Contains(input, " | ") {
		return nil, "", &Error{Message: "use the format: <current skills> | <target role>, for example: Python, SQL | Data Scientist"}
	}

	parts := strings.SplitN(input, " | ", 2)
	for _, s := range strings.Split(parts[0], ",") {
		skills = append(skills, strings.TrimSpace(s))
	}
	role = strings.TrimSpace(parts[1])
	return skills, role, nil
}

var salaryToken = regexp.MustCompile(`(?i)\$|\d+k`)

// ParseJobPreferences splits a comma-separated free-text preference list
// into structured buckets. Tokens carrying a currency marker become the
// salary range, "remote" flips RemoteOK, known industry names fill
// Industry, and everything else counts as a location.
func ParseJobPreferences(input string) types.JobPreferences {
	var prefs types.JobPreferences
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		lower := strings.ToLower(token)
		switch {
		case salaryToken.MatchString(token):
			prefs.SalaryRange = token
		case strings.Contains(lower, "remote"):
			prefs.RemoteOK = true
		case knowledge.IsIndustry(lower):
			prefs.Industry = append(prefs.Industry, token)
		default:
			prefs.Location = append(prefs.Location, token)
		}
	}
	return prefs
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	htmlTag       = regexp.MustCompile(`<[^>]*>`)
	unsafeChars   = regexp.MustCompile(`[^\w\s\-.,!?()@#$%^&*+=;:'"/\\]`)
)

// SanitizeInput normalizes whitespace, strips markup, and bounds the length
// of raw user text.
func SanitizeInput(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	text = htmlTag.ReplaceAllString(text, "")
	text = unsafeChars.ReplaceAllString(text, "")

	if len(text) > MaxInputLength {
		text = text[:MaxInputLength] + "..."
	}
	return text
}
