package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/types"
)

func TestSkills(t *testing.T) {
	tests := []struct {
		name         string
		skills       []string
		valid        bool
		wantWarnings bool
	}{
		{"valid list", []string{"Python", "SQL"}, true, false},
		{"empty list", nil, false, false},
		{"empty skill entry", []string{"Python", "  "}, false, false},
		{"duplicates warn", []string{"Python", "python"}, true, true},
		{"whitespace warns", []string{" Python "}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Skills(tt.skills)
			assert.Equal(t, tt.valid, res.Valid())
			if tt.wantWarnings {
				assert.NotEmpty(t, res.Warnings)
			}
		})
	}
}

func TestSkillsLargeListWarns(t *testing.T) {
	skills := make([]string, 51)
	for i := range skills {
		skills[i] = "Skill" + strings.Repeat("x", i+1)
	}

	res := Skills(skills)
	assert.True(t, res.Valid())
	assert.NotEmpty(t, res.Warnings)
}

func TestSkillsVeryLongNameWarns(t *testing.T) {
	res := Skills([]string{strings.Repeat("a", 101)})
	assert.True(t, res.Valid())
	assert.NotEmpty(t, res.Warnings)
}

func TestResumeText(t *testing.T) {
	fullResume := "Experience: 5 years backend development.\n" +
		"Education: BSc Computer Science.\n" +
		"Skills: Go, PostgreSQL.\n" +
		"Contact: jane@example.com, 555-123-4567.\n" +
		strings.Repeat("More detail about past projects. ", 10)

	res := ResumeText(fullResume)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Warnings)

	res = ResumeText("")
	assert.False(t, res.Valid())

	res = ResumeText(strings.Repeat("x", MaxResumeLength+1))
	assert.False(t, res.Valid())
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "too long")
}

func TestResumeTextWarnsOnMissingSections(t *testing.T) {
	res := ResumeText("I am a developer who writes code for a living and enjoys solving hard problems every single day of the week")

	assert.True(t, res.Valid())
	joined := strings.Join(res.Warnings, "\n")
	assert.Contains(t, joined, "missing sections")
	assert.Contains(t, joined, "experience")
	assert.Contains(t, joined, "no email address")
	assert.Contains(t, joined, "no phone number")
}

func TestTargetRole(t *testing.T) {
	assert.True(t, TargetRole("Data Scientist").Valid())
	assert.False(t, TargetRole("").Valid())
	assert.False(t, TargetRole("   ").Valid())

	res := TargetRole("data scientist")
	assert.True(t, res.Valid())
	assert.Contains(t, strings.Join(res.Warnings, "\n"), "capitalized")

	res = TargetRole(strings.Repeat("x", 201))
	assert.True(t, res.Valid())
	assert.NotEmpty(t, res.Warnings)
}

func TestInterviewAnswers(t *testing.T) {
	res := InterviewAnswers([]string{"I led a migration of our billing system to a new platform."})
	assert.True(t, res.Valid())

	assert.False(t, InterviewAnswers(nil).Valid())
	assert.False(t, InterviewAnswers([]string{"fine answer here", ""}).Valid())

	res = InterviewAnswers([]string{"short"})
	assert.True(t, res.Valid())
	assert.NotEmpty(t, res.Warnings)

	res = InterviewAnswers([]string{strings.Repeat("x", MaxAnswerLength+1)})
	assert.True(t, res.Valid())
	assert.NotEmpty(t, res.Warnings)
}

func TestJobPreferences(t *testing.T) {
	assert.False(t, JobPreferences(types.JobPreferences{}).Valid())

	res := JobPreferences(types.JobPreferences{Location: []string{"Berlin"}, SalaryRange: "50k-70k"})
	assert.True(t, res.Valid())
	assert.Empty(t, res.Warnings)

	res = JobPreferences(types.JobPreferences{SalaryRange: "competitive"})
	assert.True(t, res.Valid())
	assert.Contains(t, strings.Join(res.Warnings, "\n"), "salary range format unclear")

	assert.True(t, JobPreferences(types.JobPreferences{RemoteOK: true}).Valid())
}

func TestParseSkillGapInput(t *testing.T) {
	skills, role, err := ParseSkillGapInput("Python, SQL | Data Scientist")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, skills)
	assert.Equal(t, "Data Scientist", role)

	_, _, err = ParseSkillGapInput("Python, SQL Data Scientist")
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "<current skills> | <target role>")
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, Result{}.Err())

	err := Result{Errors: []string{"a", "b"}}.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a; b")
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"whitespace collapsed", "  hello   world  ", "hello world"},
		{"html stripped", "hello <script>alert(1)</script> world", "hello alert(1) world"},
		{"empty", "", ""},
		{"plain text kept", "I know Python, SQL!", "I know Python, SQL!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeInput(tt.input))
		})
	}

	long := SanitizeInput(strings.Repeat("a", MaxInputLength+500))
	assert.Len(t, long, MaxInputLength+3)
	assert.True(t, strings.HasSuffix(long, "..."))
}

func TestParseJobPreferences(t *testing.T) {
	prefs := ParseJobPreferences("Remote, 100k-140k, finance, New York")

	assert.True(t, prefs.RemoteOK)
	assert.Equal(t, "100k-140k", prefs.SalaryRange)
	assert.Equal(t, []string{"finance"}, prefs.Industry)
	assert.Equal(t, []string{"New York"}, prefs.Location)
}

func TestParseJobPreferencesCurrencyMarker(t *testing.T) {
	prefs := ParseJobPreferences("$120000+")
	assert.Equal(t, "$120000+", prefs.SalaryRange)
}

func TestParseJobPreferencesEmpty(t *testing.T) {
	prefs := ParseJobPreferences("")
	assert.False(t, prefs.RemoteOK)
	assert.Empty(t, prefs.Location)
	assert.Empty(t, prefs.Industry)
	assert.Empty(t, prefs.SalaryRange)
}
