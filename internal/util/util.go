package util

import (
	"fmt"
	"strings"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatUptime renders a second count as "Xd Xh Xm". Zero or negative
// input yields an empty string.
func FormatUptime(seconds int64) string {
	if seconds <= 0 {
		return ""
	}

	days := seconds / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute

	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

// IsPreformattedUptime reports whether s already looks like "1d 04:26:59".
func IsPreformattedUptime(s string) bool {
	return strings.Contains(s, "d") && strings.Contains(s, ":")
}

// FormatBitsPerSecond formats a link rate with decimal prefixes and one decimal place.
func FormatBitsPerSecond(bps float64) string {
	switch {
	case bps < 1e3:
		return fmt.Sprintf("%.1f bps", bps)
	case bps < 1e6:
		return fmt.Sprintf("%.1f Kbps", bps/1e3)
	case bps < 1e9:
		return fmt.Sprintf("%.1f Mbps", bps/1e6)
	default:
		return fmt.Sprintf("%.1f Gbps", bps/1e9)
	}
}

// FormatDBm renders an optical power reading.
func FormatDBm(dbm float64) string {
	return fmt.Sprintf("%.2f dBm", dbm)
}
