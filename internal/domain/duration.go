package domain

import "fmt"

// FormatDuration renders milliseconds as HH:MM:SS. Hours are not wrapped at 24.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	minutes := ms / 60_000 % 60
	seconds := ms / 1_000 % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
