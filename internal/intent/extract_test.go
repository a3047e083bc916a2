package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains []string
	}{
		{
			name:     "Comma and 'and' separated list",
			message:  "I know Python, JavaScript and Go",
			contains: []string{"Python", "JavaScript", "Go"},
		},
		{
			name:     "Skill declaration with trailing clause",
			message:  "I know Python, SQL, and have 2 years of data analysis experience",
			contains: []string{"Python", "SQL"},
		},
		{
			name:     "Experience-with phrasing",
			message:  "I have experience with Docker and Kubernetes",
			contains: []string{"Docker", "Kubernetes"},
		},
		{
			name:     "Proficient-in phrasing",
			message:  "I'm proficient in Excel",
			contains: []string{"Excel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := ExtractSkills(tt.message)
			for _, want := range tt.contains {
				assert.Contains(t, skills, want)
			}
		})
	}
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	skills := ExtractSkills("I know Python, Python and SQL")
	count := 0
	for _, s := range skills {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkillsNoMatch(t *testing.T) {
	assert.Empty(t, ExtractSkills("hello there"))
}

func TestExtractRole(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"Want to become", "I want to become a Data Scientist", "Data Scientist"},
		{"Work as", "I would like to work as a DevOps Engineer", "DevOps Engineer"},
		{"Looking for position", "I'm looking for a Backend Developer position", "Backend Developer"},
		{"No role", "I like turtles", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRole(tt.message))
		})
	}
}

func TestExtractExperience(t *testing.T) {
	got := ExtractExperience("I have 2 years of software experience and worked as a barista, plus an internship")
	assert.NotEmpty(t, got)
	assert.Contains(t, got[0], "2 years")

	// Matches are verbatim and not deduplicated.
	dup := ExtractExperience("internship then another internship")
	assert.Len(t, dup, 2)
}

func TestExtractInterests(t *testing.T) {
	got := ExtractInterests("I'm passionate about machine learning and robotics")
	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "robotics")
}

func TestExtractEducation(t *testing.T) {
	got := ExtractEducation("I have a bachelor's degree in computer science")
	assert.NotEmpty(t, got)
	assert.Contains(t, got[0], "bachelor's")
}

func TestExtractProfile(t *testing.T) {
	profile := ExtractProfile("I know Python and SQL, I want to become a Data Scientist, and I have 2 years of analytics experience")

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "SQL")
	assert.Equal(t, "Data Scientist", profile.CareerGoals)
	assert.NotEmpty(t, profile.Experience)
}
