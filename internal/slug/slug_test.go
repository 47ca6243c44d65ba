package slug

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Ramen Shop", want: "ramen-shop"},
		{name: "punctuation runs collapse", in: "Bob's  --  Burgers!!", want: "bob-s-burgers"},
		{name: "leading and trailing separators", in: "  ~Café Olé~  ", want: "cafe-ole"},
		{name: "digits kept", in: "Route 66 Diner", want: "route-66-diner"},
		{name: "already a slug", in: "ramen-shop", want: "ramen-shop"},
		{name: "nothing usable", in: "寿司", want: Fallback},
		{name: "empty", in: "", want: Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, Valid(got), "slug %q must be URL-safe", got)
		})
	}
}

func TestSlugify_AlwaysURLSafe(t *testing.T) {
	inputs := []string{
		"Ünïcödé Ñame", "a", "---", "A_B_C", "tab\tseparated\nlines", "100% Organic",
		strings.Repeat("x ", 50), "Ｆｕｌｌｗｉｄｔｈ", "emoji 🍜 bar",
	}

	for _, in := range inputs {
		got := Slugify(in)
		assert.True(t, Valid(got), "Slugify(%q) = %q is not URL-safe", in, got)
		assert.Equal(t, got, Slugify(in), "Slugify must be deterministic")
	}
}

func TestPattern(t *testing.T) {
	re := regexp.MustCompile("(?i)" + Pattern("ramen-shop"))

	for _, s := range []string{"ramen-shop", "ramen-shop-2", "RAMEN-SHOP-10", "ramen-shop-"} {
		assert.True(t, re.MatchString(s), s)
	}
	for _, s := range []string{"ramen-shops", "the-ramen-shop", "ramen-shop-2b", "ramen"} {
		assert.False(t, re.MatchString(s), s)
	}
}

// fakeSlugs simulates the persisted slug column for Generate.
type fakeSlugs []string

func (f *fakeSlugs) count(_ context.Context, pattern string) (int64, error) {
	re := regexp.MustCompile("(?i)" + pattern)

	var n int64
	for _, s := range *f {
		if re.MatchString(s) {
			n++
		}
	}

	return n, nil
}

func TestGenerate_SequentialDuplicates(t *testing.T) {
	ctx := context.Background()
	existing := &fakeSlugs{}

	var got []string
	for range 3 {
		s, err := Generate(ctx, "Ramen Shop", existing.count)
		require.NoError(t, err)
		*existing = append(*existing, s)
		got = append(got, s)
	}

	assert.Equal(t, []string{"ramen-shop", "ramen-shop-2", "ramen-shop-3"}, got)
}

func TestGenerate_IgnoresUnrelatedSlugs(t *testing.T) {
	existing := &fakeSlugs{"ramen-shops", "ramen", "ramen-shop-deluxe"}

	s, err := Generate(context.Background(), "Ramen Shop", existing.count)

	require.NoError(t, err)
	assert.Equal(t, "ramen-shop", s)
}

func TestGenerate_CountError(t *testing.T) {
	failing := func(context.Context, string) (int64, error) {
		return 0, errors.New("connection refused")
	}

	_, err := Generate(context.Background(), "Ramen Shop", failing)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		taken []string
		want  string
	}{
		{name: "base only", taken: []string{"ramen"}, want: "ramen-2"},
		{name: "gap left by a rename", taken: []string{"ramen", "ramen-3"}, want: "ramen-4"},
		{name: "count dominates", taken: []string{"ramen", "ramen-", "ramen-2"}, want: "ramen-4"},
		{name: "case-insensitive suffix", taken: []string{"Ramen-7"}, want: "ramen-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next("ramen", tt.taken))
		})
	}
}
