package screening

// parseRequiredYears extracts the required years from a free-text experience
// requirement such as "2 years" or "3+ years preferred". It reads the first
// contiguous run of digits and returns 0 when the text holds none, so an
// unparseable requirement never penalizes beyond the neutral default.
func parseRequiredYears(s string) int {
	years := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			years = years*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	return years
}
