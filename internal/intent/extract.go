package intent

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// Extraction patterns. Each extractor is a pure function: same input text,
// same output list; results are ordered by first match in the text.
var (
	skillPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:I know|I'm good at|my skills are|skills are|I can|proficient in|I have experience (?:in|with))\s+([\w\s,+#./-]+)`),
		regexp.MustCompile(`(?i)experience (?:in|with)\s+([\w\s,+#./-]+)`),
		regexp.MustCompile(`(?i)skilled (?:in|with)\s+([\w\s,+#./-]+)`),
	}
	skillSplitter = regexp.MustCompile(`,|\sand\s`)

	rolePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:want to be|want to become|become|work as|position as|role of|job as)\s+(?:an? )?([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
		regexp.MustCompile(`(?i)interested in (?:becoming|being)\s+(?:an? )?([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
		regexp.MustCompile(`(?i)looking for\s+(?:an? )?([A-Za-z]+(?:\s+[A-Za-z]+)?)\s+(?:position|role|job)`),
	}

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+\+?\s*years?[\w\s]*experience`),
		regexp.MustCompile(`(?i)worked as\s+[\w\s]+`),
		regexp.MustCompile(`(?i)\b(?:internship|freelance|freelancing)\b`),
		regexp.MustCompile(`(?i)\b(?:recent|new)\s+graduate\b`),
	}

	interestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:interested in|passionate about|enjoy working (?:on|with))\s+([\w\s,]+)`),
	}

	educationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)((?:bachelor(?:'s)?|master(?:'s)?|phd|ph\.d\.|doctorate)[\w\s.']*)`),
		regexp.MustCompile(`(?i)((?:university|college)(?:\s+of)?\s+[\w\s]+)`),
	}
)

// ExtractSkills pulls skill names out of declarations like "I know X, Y and Z".
// Captured fragments are split on commas and the word "and", trimmed and
// deduplicated exactly as captured.
func ExtractSkills(message string) []string {
	var skills []string
	seen := make(map[string]bool)
	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllStringSubmatch(message, -1) {
			for _, part := range skillSplitter.Split(match[1], -1) {
				part = strings.TrimSpace(part)
				if part == "" || seen[part] {
					continue
				}
				skills = append(skills, part)
				seen[part] = true
			}
		}
	}
	return skills
}

// ExtractRole returns the first target role mentioned ("want to become X",
// "looking for X position"), trimmed, or "" when none is found.
func ExtractRole(message string) string {
	for _, pattern := range rolePatterns {
		if match := pattern.FindStringSubmatch(message); match != nil {
			return strings.TrimSpace(match[1])
		}
	}
	return ""
}

// ExtractExperience returns all experience fragments verbatim, in match
// order, without deduplication.
func ExtractExperience(message string) []string {
	var out []string
	for _, pattern := range experiencePatterns {
		out = append(out, pattern.FindAllString(message, -1)...)
	}
	return out
}

// ExtractInterests returns interests from phrases like "interested in X" or
// "passionate about X", split and deduplicated like skills.
func ExtractInterests(message string) []string {
	var interests []string
	seen := make(map[string]bool)
	for _, pattern := range interestPatterns {
		for _, match := range pattern.FindAllStringSubmatch(message, -1) {
			for _, part := range skillSplitter.Split(match[1], -1) {
				part = strings.TrimSpace(part)
				if part == "" || seen[part] {
					continue
				}
				interests = append(interests, part)
				seen[part] = true
			}
		}
	}
	return interests
}

// ExtractEducation returns education fragments ("bachelor's in X",
// "University of Y"), trimmed and deduplicated.
func ExtractEducation(message string) []string {
	var education []string
	seen := make(map[string]bool)
	for _, pattern := range educationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(message, -1) {
			frag := strings.TrimSpace(match[1])
			if frag == "" || seen[frag] {
				continue
			}
			education = append(education, frag)
			seen[frag] = true
		}
	}
	return education
}

// ExtractProfile runs every extractor over the message and assembles the
// results into a partial UserProfile.
func ExtractProfile(message string) types.UserProfile {
	profile := types.UserProfile{
		Skills:     ExtractSkills(message),
		Experience: ExtractExperience(message),
		Interests:  ExtractInterests(message),
		Education:  ExtractEducation(message),
	}
	if role := ExtractRole(message); role != "" {
		profile.CareerGoals = role
	}
	return profile
}
