package logs

import "unicode/utf8"

// Truncate returns at most n runes of s. It never splits a multi-byte character.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// TruncateBytes is Truncate for raw bodies; invalid UTF-8 is cut on byte boundaries.
func TruncateBytes(b []byte, n int) string {
	if !utf8.Valid(b) {
		if len(b) > n {
			b = b[:n]
		}
		return string(b)
	}
	return Truncate(string(b), n)
}
