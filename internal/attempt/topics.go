package attempt

import "strings"

// SplitTopics splits a comma-separated topic list, trimming whitespace and
// dropping blank entries.
func SplitTopics(s string) []string {
	var topics []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// CleanTopics trims every topic and drops blanks, preserving order.
func CleanTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTopics is the inverse of SplitTopics for storage.
func JoinTopics(topics []string) string {
	return strings.Join(CleanTopics(topics), ",")
}
