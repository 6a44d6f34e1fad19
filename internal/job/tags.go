package job

import (
	"strings"

	"github.com/lib/pq"
)

const maxTags = 20

// NormalizeTags trims each tag, drops empties and case-insensitive repeats
// (first spelling wins) and caps the list. The result is never nil.
func NormalizeTags(in []string) pq.StringArray {
	seen := map[string]struct{}{}
	out := make(pq.StringArray, 0, len(in))

	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)

		if len(out) >= maxTags {
			break
		}
	}

	return out
}

// SplitTags parses the comma separated form the web client submits.
func SplitTags(s string) []string {
	return strings.Split(s, ",")
}
