package convert

import "fmt"

// MinutesPerDay is the modulus for clock arithmetic.
const MinutesPerDay = 24 * 60

type zone struct {
	name   string
	offset int // minutes east of UTC, DST ignored
}

var zones = []zone{
	{"UTC", 0},
	{"PST", -8 * 60},
	{"EST", -5 * 60},
	{"CET", 1 * 60},
	{"IST", 5*60 + 30},
	{"JST", 9 * 60},
	{"AEST", 10 * 60},
	{"NPT", 5*60 + 45},
}

// Zones returns the timezone abbreviations in table order.
func Zones() []string {
	names := make([]string, len(zones))
	for i, z := range zones {
		names[i] = z.name
	}
	return names
}

// Offset returns a zone's fixed UTC offset in minutes.
func Offset(name string) (int, bool) {
	for _, z := range zones {
		if z.name == name {
			return z.offset, true
		}
	}
	return 0, false
}

// ConvertTime shifts a minutes-since-midnight value from src to dst and
// reduces it into [0, MinutesPerDay).
func ConvertTime(minutes int, src, dst string) (int, error) {
	from, ok := Offset(src)
	if !ok {
		return 0, fmt.Errorf("timezone %q: %w", src, ErrUnknownUnit)
	}
	to, ok := Offset(dst)
	if !ok {
		return 0, fmt.Errorf("timezone %q: %w", dst, ErrUnknownUnit)
	}
	return Mod(minutes+to-from, MinutesPerDay), nil
}

// Mod returns a mod m in [0, m).
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// FormatClock renders minutes since midnight as 24h HH:MM.
func FormatClock(minutes int) string {
	minutes = Mod(minutes, MinutesPerDay)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
