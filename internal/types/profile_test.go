package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfileMerge(t *testing.T) {
	tests := []struct {
		name       string
		base       UserProfile
		incoming   UserProfile
		wantSkills []string
		wantGoals  string
	}{
		{
			name:       "Appends new skills without duplicates",
			base:       UserProfile{Skills: []string{"Python", "SQL"}},
			incoming:   UserProfile{Skills: []string{"SQL", "AWS"}},
			wantSkills: []string{"Python", "SQL", "AWS"},
		},
		{
			name:       "Merge into empty profile",
			base:       UserProfile{},
			incoming:   UserProfile{Skills: []string{"Go"}, CareerGoals: "Backend engineer"},
			wantSkills: []string{"Go"},
			wantGoals:  "Backend engineer",
		},
		{
			name:       "Later goals replace earlier ones",
			base:       UserProfile{CareerGoals: "Analyst"},
			incoming:   UserProfile{CareerGoals: "Data Scientist"},
			wantSkills: nil,
			wantGoals:  "Data Scientist",
		},
		{
			name:       "Empty incoming leaves goals untouched",
			base:       UserProfile{CareerGoals: "Analyst"},
			incoming:   UserProfile{},
			wantSkills: nil,
			wantGoals:  "Analyst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.base.Merge(tt.incoming)
			assert.Equal(t, tt.wantSkills, tt.base.Skills)
			assert.Equal(t, tt.wantGoals, tt.base.CareerGoals)
		})
	}
}

func TestUserProfileMergeCaseSensitiveSkills(t *testing.T) {
	p := UserProfile{Skills: []string{"python"}}
	p.Merge(UserProfile{Skills: []string{"Python"}})
	// Dedup is exact-match; differently cased skills are distinct as captured.
	assert.Equal(t, []string{"python", "Python"}, p.Skills)
}

func TestUserProfileIsEmpty(t *testing.T) {
	var p UserProfile
	assert.True(t, p.IsEmpty())

	p.Experience = append(p.Experience, "2 years data analysis")
	assert.False(t, p.IsEmpty())
}
