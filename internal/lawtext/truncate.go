package lawtext

import "strings"

// Truncate bounds law text to maxChars for the LLM context window. Lines
// containing one of the keywords are kept first; if those fill less than half
// the budget, remaining lines are backfilled from the start of the document.
// Input already within the budget is returned unchanged.
func Truncate(text string, maxChars int, keywords []string) string {
	if len(text) <= maxChars {
		return text
	}

	lines := strings.Split(text, "\n")
	var kept []string
	seen := make(map[string]bool)
	charCount := 0

	for _, line := range lines {
		if !containsAnyKeyword(line, keywords) {
			continue
		}
		// Joined lines cost one separator byte each.
		cost := len(line)
		if len(kept) > 0 {
			cost++
		}
		if charCount+cost > maxChars {
			break
		}
		kept = append(kept, line)
		seen[line] = true
		charCount += cost
	}

	// Not enough keyword-relevant content, backfill from the top.
	if charCount < maxChars/2 {
		for _, line := range lines {
			if seen[line] {
				continue
			}
			cost := len(line)
			if len(kept) > 0 {
				cost++
			}
			if charCount+cost > maxChars {
				break
			}
			kept = append(kept, line)
			seen[line] = true
			charCount += cost
		}
	}

	return strings.Join(kept, "\n")
}

func containsAnyKeyword(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
