// Package slug derives unique, URL-safe identifiers from display names.
package slug

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"storefront/internal/errors"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when a name has no characters that survive slugification.
const Fallback = "store"

// CountFunc counts existing slugs matching a case-insensitive regular expression.
type CountFunc func(ctx context.Context, pattern string) (int64, error)

var valid = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Slugify lower-cases name, strips diacritics and collapses every run of
// characters outside [a-z0-9] into a single hyphen.
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))

	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)

			continue
		}
		pendingHyphen = true
	}

	if b.Len() == 0 {
		return Fallback
	}

	return b.String()
}

// Valid reports whether s is a well-formed slug.
func Valid(s string) bool {
	return valid.MatchString(s)
}

// Pattern returns the expression matching base and its numbered variants
// (base, base-2, base-17, ...).
func Pattern(base string) string {
	return "^" + regexp.QuoteMeta(base) + "(-[0-9]*)?$"
}

// Generate slugifies name and, if the base slug is already in use, appends
// one more than the number of existing slugs sharing the base.
func Generate(ctx context.Context, name string, count CountFunc) (string, error) {
	base := Slugify(name)

	n, err := count(ctx, Pattern(base))
	if err != nil {
		return "", errors.Wrap(err, "failed to count existing slugs")
	}

	if n == 0 {
		return base, nil
	}

	return base + "-" + strconv.FormatInt(n+1, 10), nil
}

// Next picks a free numbered variant of base given the slugs already taken.
// It is used after a uniqueness conflict, where the count-based suffix of
// Generate has proven stale.
func Next(base string, taken []string) string {
	highest := int64(len(taken))
	prefix := base + "-"

	for _, s := range taken {
		suffix, ok := strings.CutPrefix(strings.ToLower(s), prefix)
		if !ok {
			continue
		}

		n, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			continue
		}

		highest = max(highest, n)
	}

	return prefix + strconv.FormatInt(highest+1, 10)
}
