// Package sanitize cleans untrusted input before it is stored as a post or
// a setting.
package sanitize

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy = bluemonday.StrictPolicy()
	postPolicy = newPostPolicy()

	whitespaces = regexp.MustCompile(`[\r\n\t ]+`)

	angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

func newPostPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowElements("figure", "figcaption", "mark", "u", "s")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	return p
}

// Text converts s into single line plain text. Markup is removed together with
// the content of script and style elements, whitespace runs become a single
// space and the result is trimmed. Input without "<" is not run through the
// markup policy, so entities such as "&lt;" or "&amp;" are kept as written.
// The result never contains "<" or ">" decoded from an entity.
func Text(s string) string {
	if strings.Contains(s, "<") {
		s = angleEscaper.Replace(html.UnescapeString(textPolicy.Sanitize(s)))
	}
	s = whitespaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// PostContent keeps the safe subset of markup allowed in post content and
// strips scripts, event handlers and unsafe URLs.
func PostContent(s string) string {
	return postPolicy.Sanitize(s)
}

// AbsInt converts s into a non-negative integer. It reads the leading integer
// of s ("12abc" is 12), returns its absolute value and 0 when s does not start
// with a number.
func AbsInt(s string) int64 {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	if n == math.MinInt64 {
		return math.MaxInt64
	}
	if n < 0 {
		return -n
	}
	return n
}
