// Package types provides type definitions for structured data used throughout the career-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UserProfile represents a user's career profile. All fields are optional;
// an empty profile is valid at every call site. Fields are append-only across
// a conversation unless the caller deliberately resets them.
type UserProfile struct {
	Skills              []string `json:"skills"`
	Experience          []string `json:"experience"`
	Interests           []string `json:"interests"`
	Education           []string `json:"education"`
	CareerGoals         string   `json:"career_goals,omitempty"`
	PreferredIndustries []string `json:"preferred_industries,omitempty"`
	LocationPreferences []string `json:"location_preferences,omitempty"`
	SalaryExpectations  string   `json:"salary_expectations,omitempty"`
}

// Merge appends fields from other into the profile, deduplicating skills by
// exact string. Later messages in a conversation add to earlier extractions
// rather than replacing them.
func (p *UserProfile) Merge(other UserProfile) {
	p.Skills = appendUnique(p.Skills, other.Skills)
	p.Experience = append(p.Experience, other.Experience...)
	p.Interests = append(p.Interests, other.Interests...)
	p.Education = append(p.Education, other.Education...)
	if other.CareerGoals != "" {
		p.CareerGoals = other.CareerGoals
	}
	p.PreferredIndustries = appendUnique(p.PreferredIndustries, other.PreferredIndustries)
	p.LocationPreferences = appendUnique(p.LocationPreferences, other.LocationPreferences)
	if other.SalaryExpectations != "" {
		p.SalaryExpectations = other.SalaryExpectations
	}
}

// IsEmpty reports whether no profile field has been populated.
func (p *UserProfile) IsEmpty() bool {
	return len(p.Skills) == 0 && len(p.Experience) == 0 &&
		len(p.Interests) == 0 && len(p.Education) == 0 &&
		p.CareerGoals == "" && len(p.PreferredIndustries) == 0 &&
		len(p.LocationPreferences) == 0 && p.SalaryExpectations == ""
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	return dst
}

// JobPreferences captures what the user wants from a job search.
type JobPreferences struct {
	Location    []string `json:"location"`
	Industry    []string `json:"industry"`
	SalaryRange string   `json:"salary_range"`
	RemoteOK    bool     `json:"remote_ok"`
}
