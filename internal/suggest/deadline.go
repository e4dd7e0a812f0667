package suggest

import (
	"regexp"
	"time"
)

var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// deadlineLayouts are tried in order against raw deadline strings.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const defaultDeadlineOffset = 7 * 24 * time.Hour

// parseDeadline turns a classifier-extracted deadline string into a concrete
// time. Unparseable strings degrade to an embedded YYYY-MM-DD substring and
// finally to seven days from now; the caller never sees an error.
func parseDeadline(raw string, now time.Time) time.Time {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	if embedded := isoDatePattern.FindString(raw); embedded != "" {
		if t, err := time.Parse("2006-01-02", embedded); err == nil {
			return t
		}
	}
	return now.Add(defaultDeadlineOffset)
}
