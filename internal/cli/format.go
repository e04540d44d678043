package cli

import (
	"strconv"
	"strings"
	"time"
)

// initials builds the avatar letters: first letters of the first and last
// name, or the first two characters of a single name.
func initials(name string) string {
	names := strings.Fields(strings.TrimSpace(name))
	if len(names) >= 2 {
		first := []rune(names[0])
		last := []rune(names[len(names)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func formatTime(t time.Time) string {
	return t.Format("15:04")
}

// formatPrice renders whole tenge with thousands separators: 1500 -> "1 500 ₸".
func formatPrice(v int64) string {
	s := strconv.FormatInt(v, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String() + " ₸"
}
