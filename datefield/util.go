package datefield

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// maxValueLength caps pathological inputs; no date form comes close.
const maxValueLength = 256

// sanitizeText folds compatibility forms (full-width digits and slashes
// become ASCII), drops control characters and collapses whitespace.
func sanitizeText(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	s = norm.NFKC.String(s)
	b := strings.Builder{}
	lastSpace := false
	for _, r := range s {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if lastSpace {
				continue
			}
			b.WriteRune(' ')
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", false
	}
	if len(out) > maxValueLength {
		cut := maxValueLength
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out, true
}

// Normalize is the string field types match against: the sanitized value,
// or "" when nothing survives sanitizing. An empty field is a prefix of
// everything.
func Normalize(value string) string {
	s, _ := sanitizeText(value)
	return s
}

// makeKey hashes the parts into a stable hex id.
func makeKey(parts ...string) string {
	h := sha1.Sum([]byte(strings.Join(parts, ".")))
	return hex.EncodeToString(h[:])
}
