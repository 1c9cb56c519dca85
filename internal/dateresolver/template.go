// Package dateresolver finds the effective date of an invoice by scanning its
// text for dates shaped like the vendor's date-format template.
package dateresolver

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Delimiters lists the characters a template may use between its parts.
const Delimiters = "/-."

// digitFragment matches exactly one ASCII digit. Templates compile with
// regexp2.ECMAScript so \d does not match other Unicode digits.
const digitFragment = `\d`

type span struct {
	start  int
	length int
}

func (s span) slice(match string) string {
	return match[s.start : s.start+s.length]
}

// Template is a parsed date-format template such as "DD/MM/YYYY".
type Template struct {
	format    string
	delimiter byte
	pattern   string
	day       span
	month     span
	year      span
	re        *regexp2.Regexp
}

// ParseTemplate validates format and compiles its match pattern.
//
// A template holds contiguous runs of D (1-2), M (1-2) and Y (2 or 4)
// separated by a single delimiter type drawn from Delimiters.
func ParseTemplate(format string) (Template, error) {
	delimIdx := strings.IndexAny(format, Delimiters)
	if delimIdx < 0 {
		return Template{}, fmt.Errorf("date template %q has no delimiter (one of %q)", format, Delimiters)
	}
	delim := format[delimIdx]

	for i := 0; i < len(format); i++ {
		switch c := format[i]; {
		case c == 'D' || c == 'M' || c == 'Y' || c == delim:
		case strings.IndexByte(Delimiters, c) >= 0:
			return Template{}, fmt.Errorf("date template %q mixes delimiters %q and %q", format, delim, c)
		default:
			return Template{}, fmt.Errorf("date template %q contains unsupported character %q", format, c)
		}
	}

	day, err := runOf(format, 'D', 1, 2)
	if err != nil {
		return Template{}, err
	}
	month, err := runOf(format, 'M', 1, 2)
	if err != nil {
		return Template{}, err
	}
	year, err := runOf(format, 'Y', 2, 4)
	if err != nil {
		return Template{}, err
	}
	if year.length == 3 {
		return Template{}, fmt.Errorf("date template %q: year must have 2 or 4 digits", format)
	}

	pattern := BuildPattern(format, delim)
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return Template{}, fmt.Errorf("date template %q: compiling %q: %w", format, pattern, err)
	}

	return Template{
		format:    format,
		delimiter: delim,
		pattern:   pattern,
		day:       day,
		month:     month,
		year:      year,
		re:        re,
	}, nil
}

// MustParseTemplate is ParseTemplate for templates known to be valid.
func MustParseTemplate(format string) Template {
	t, err := ParseTemplate(format)
	if err != nil {
		panic(err)
	}
	return t
}

// BuildPattern maps every template character to a single-digit wildcard,
// except the delimiter which becomes an escaped literal. The result has one
// fragment per template character, in template order.
func BuildPattern(format string, delim byte) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] == delim {
			b.WriteByte('\\')
			b.WriteByte(delim)
			continue
		}
		b.WriteString(digitFragment)
	}
	return b.String()
}

func runOf(format string, c byte, minLen, maxLen int) (span, error) {
	start := strings.IndexByte(format, c)
	if start < 0 {
		return span{}, fmt.Errorf("date template %q has no %c run", format, c)
	}
	length := strings.Count(format, string(c))
	if format[start:start+length] != strings.Repeat(string(c), length) {
		return span{}, fmt.Errorf("date template %q: %c run is not contiguous", format, c)
	}
	if length < minLen || length > maxLen {
		return span{}, fmt.Errorf("date template %q: %c run length %d outside %d-%d", format, c, length, minLen, maxLen)
	}
	return span{start: start, length: length}, nil
}

// Format returns the template text, e.g. "DD/MM/YYYY".
func (t Template) Format() string { return t.format }

// Delimiter returns the template's delimiter character.
func (t Template) Delimiter() byte { return t.delimiter }

// Pattern returns the regular expression generated from the template.
func (t Template) Pattern() string { return t.pattern }

// ShortYear reports whether the template prints two-digit years.
func (t Template) ShortYear() bool { return t.year.length == 2 }

// FindAll returns every non-overlapping substring of line that matches the
// template's pattern, left to right. On a regex evaluation error it returns
// the matches found so far together with the error.
func (t Template) FindAll(line string) ([]string, error) {
	var matches []string
	m, err := t.re.FindStringMatch(line)
	for err == nil && m != nil {
		matches = append(matches, m.String())
		m, err = t.re.FindNextMatch(m)
	}
	return matches, err
}
