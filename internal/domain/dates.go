package domain

import "time"

// ISODate is the wire format for every date field on a record.
const ISODate = "2006-01-02"

// ParseDate parses an ISO calendar date. Record dates arrive as free text
// from the forms upstream, so callers must treat ok=false as recoverable
// and substitute their own fallback (placeholder label, zero-width bar).
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a time as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}

// ShortDate renders a human-oriented label like "Jan 2" for axis ticks.
func ShortDate(t time.Time) string {
	return t.Format("Jan 2")
}
