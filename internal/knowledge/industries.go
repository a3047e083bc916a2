// Package knowledge holds the static career data used by rule-based
// fallbacks and validation hints. In a fuller deployment this would come
// from a database or an external labor-market API.
package knowledge

import "strings"

// SalaryBands holds typical salary ranges by seniority.
type SalaryBands struct {
	Entry  string
	Mid    string
	Senior string
}

// Industry describes one industry's common roles, skills, and pay.
type Industry struct {
	Name     string
	Roles    []string
	Skills   []string
	Salaries SalaryBands
}

// Industries lists the known industries. Order is significant: fallback
// recommendations keep this order on equal match scores.
var Industries = []Industry{
	{
		Name:   "tech",
		Roles:  []string{"Software Engineer", "Data Scientist", "DevOps Engineer", "Product Manager"},
		Skills: []string{"Python", "JavaScript", "SQL", "Git", "AWS", "Docker"},
		Salaries: SalaryBands{
			Entry:  "70-90k",
			Mid:    "90-130k",
			Senior: "130-200k+",
		},
	},
	{
		Name:   "finance",
		Roles:  []string{"Financial Analyst", "Investment Banker", "Risk Manager", "Quantitative Analyst"},
		Skills: []string{"Excel", "Financial Modeling", "Python", "R", "Statistics"},
		Salaries: SalaryBands{
			Entry:  "60-80k",
			Mid:    "80-120k",
			Senior: "120-250k+",
		},
	},
	{
		Name:   "marketing",
		Roles:  []string{"Digital Marketer", "Content Manager", "SEO Specialist", "Growth Hacker"},
		Skills: []string{"Google Analytics", "SEO", "Social Media", "Content Creation", "A/B Testing"},
		Salaries: SalaryBands{
			Entry:  "45-65k",
			Mid:    "65-95k",
			Senior: "95-150k+",
		},
	},
}

// SkillCategories groups common skills for profile analysis.
var SkillCategories = map[string][]string{
	"technical":     {"Python", "Java", "JavaScript", "SQL", "AWS", "Docker", "Git"},
	"analytical":    {"Data Analysis", "Statistics", "Machine Learning", "Excel", "Tableau"},
	"communication": {"Public Speaking", "Writing", "Presentation", "Negotiation"},
	"leadership":    {"Team Management", "Project Management", "Strategic Planning", "Mentoring"},
	"creative":      {"Design", "Content Creation", "Photography", "Video Editing", "UX/UI"},
}

// IsIndustry reports whether name refers to a known industry. Matching is
// case-insensitive and tolerates common aliases like "technology".
func IsIndustry(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ind := range Industries {
		if name == ind.Name || strings.HasPrefix(name, ind.Name) {
			return true
		}
	}
	return false
}

// MatchingSkills returns the intersection of skills with the industry's
// skill list, in the industry list's order.
func (ind Industry) MatchingSkills(skills []string) []string {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	var matches []string
	for _, s := range ind.Skills {
		if _, ok := have[s]; ok {
			matches = append(matches, s)
		}
	}
	return matches
}

// MissingSkills returns the industry skills absent from skills, in the
// industry list's order.
func (ind Industry) MissingSkills(skills []string) []string {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	var missing []string
	for _, s := range ind.Skills {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
