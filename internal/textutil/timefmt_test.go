package textutil

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"afternoon", time.Date(2015, time.March, 5, 14, 30, 0, 0, time.Local), "March 05, 2015 at 02:30 PM"},
		{"morning", time.Date(2021, time.November, 9, 9, 5, 0, 0, time.Local), "November 09, 2021 at 09:05 AM"},
		{"midnight", time.Date(2020, time.January, 1, 0, 15, 0, 0, time.Local), "January 01, 2020 at 12:15 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTimestamp(tt.at.Unix())
			if got != tt.want {
				t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.at.Unix(), got, tt.want)
			}
		})
	}

	if got := FormatTimestamp(0); got != "" {
		t.Errorf("FormatTimestamp(0) = %q, want empty", got)
	}
}

func TestFormatDateShort(t *testing.T) {
	at := time.Date(2015, time.March, 5, 14, 30, 0, 0, time.Local)
	if got := FormatDateShort(at.Unix()); got != "Mar 05, 2015" {
		t.Errorf("FormatDateShort() = %q, want %q", got, "Mar 05, 2015")
	}
	if got := FormatDateShort(0); got != "" {
		t.Errorf("FormatDateShort(0) = %q, want empty", got)
	}
}
