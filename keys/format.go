package keys

import "strings"

// FormatGroups splits key into groups of groupSize characters joined by
// sep, for human-friendly display: "ABCD1234EFGH" -> "ABCD-1234-EFGH".
// Keys shorter than one group, and non-positive group sizes, come back
// unchanged. Display only; the grouped form is not a valid key.
func FormatGroups(key string, groupSize int, sep string) string {
	if key == "" || groupSize <= 0 {
		return key
	}
	runes := []rune(key)
	if len(runes) < groupSize {
		return key
	}

	chunks := make([]string, 0, (len(runes)+groupSize-1)/groupSize)
	for i := 0; i < len(runes); i += groupSize {
		end := i + groupSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return strings.Join(chunks, sep)
}
