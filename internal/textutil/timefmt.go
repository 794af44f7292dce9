package textutil

import "time"

const (
	longDateLayout  = "January 02, 2006 at 03:04 PM"
	shortDateLayout = "Jan 02, 2006"
)

// FormatTimestamp renders a Unix timestamp as the archive's long date form in
// local time, e.g. "March 05, 2015 at 02:30 PM". A zero timestamp yields "".
func FormatTimestamp(ts int64) string {
	if ts == 0 {
		return ""
	}
	return time.Unix(ts, 0).Format(longDateLayout)
}

// FormatDateShort renders a Unix timestamp as the archive's short date form
// in local time, e.g. "Mar 05, 2015". A zero timestamp yields "".
func FormatDateShort(ts int64) string {
	if ts == 0 {
		return ""
	}
	return time.Unix(ts, 0).Format(shortDateLayout)
}
