package screening

import (
	"sort"
	"strings"
)

// parseSkillSet parses a comma-separated skills string into a normalized
// (trimmed, lowercased, deduplicated) set. Empty input yields an empty set.
func parseSkillSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill != "" {
			set[skill] = struct{}{}
		}
	}
	return set
}

// normalizeSkillSet normalizes an already-split skill list into a set.
func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range skills {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill != "" {
			set[skill] = struct{}{}
		}
	}
	return set
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func subtract(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
