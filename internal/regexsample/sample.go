// Package regexsample reduces a regular expression to one literal string the
// expression could match.
//
// The reduction is textual and lossy. It is good enough to produce a stable
// placeholder for the common patterns found in OpenAPI documents (character
// classes, bounded repetition, alternation groups) and makes no attempt to be a
// regex engine. The rewrite steps run in a fixed order and the output depends on
// that order.
package regexsample

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	exactCount     = regexp.MustCompile(`\{(\d+)\}`)
	repeatedClass  = regexp.MustCompile(`(\[[^\]]+\])\{(\d+),(\d+)\}`)
	repeatedGroup  = regexp.MustCompile(`(\([^\)]+\))\{(\d+),(\d+)\}`)
	repeatedAtom   = regexp.MustCompile(`(\\?.)\{(\d+),(\d+)\}`)
	group          = regexp.MustCompile(`\((.*?)\)`)
	charClass      = regexp.MustCompile(`\[([^\]]+)\]`)
	charRange      = regexp.MustCompile(`(\w|\d)\-(\w|\d)`)
	escapedEscape  = `\\`
	escapedHolder  = "[:escaped_backslash:]"
	boundedOneOnce = "{1,1}"
)

// Sample returns a deterministic literal sample for pattern.
func Sample(pattern string) string {
	s := stripAnchors(pattern)

	// {n} -> {n,n}
	s = exactCount.ReplaceAllString(s, "{${1},${1}}")

	// ?, * and + -> {1,1}
	for _, q := range []byte{'?', '*', '+'} {
		s = replaceUnescaped(s, q, boundedOneOnce)
	}

	// [ab]{2,3} -> [ab][ab], (ab){2,3} -> (ab)(ab), \d{2,3} -> \d\d
	s = repeatMin(repeatedClass, s)
	s = repeatMin(repeatedGroup, s)
	s = repeatMin(repeatedAtom, s)

	// (this|that) -> this
	s = replaceSubmatch(group, s, func(m []string) string {
		inner := strings.NewReplacer("(", "", ")", "").Replace(m[1])
		first, _, _ := strings.Cut(inner, "|")
		return first
	})

	// [a-z0-9] -> [a0]
	s = replaceSubmatch(charClass, s, func(m []string) string {
		return "[" + charRange.ReplaceAllString(m[1], "${1}") + "]"
	})

	// [a0] -> a
	s = replaceSubmatch(charClass, s, func(m []string) string {
		members := dropEscapes(m[1])
		if members == "" {
			return ""
		}
		return strings.ReplaceAll(members[:1], ".", `\.`)
	})

	s = strings.ReplaceAll(s, `\w`, "a")
	s = strings.ReplaceAll(s, `\d`, "1")
	s = replaceUnescaped(s, '.', "!")

	s = strings.ReplaceAll(s, escapedEscape, escapedHolder)
	s = strings.ReplaceAll(s, `\`, "")
	return strings.ReplaceAll(s, escapedHolder, `\`)
}

// stripAnchors removes a leading "/" and "^" and a trailing "$" and "/".
func stripAnchors(s string) string {
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimPrefix(s, "^")
	switch {
	case strings.HasSuffix(s, "$/"):
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "/"), strings.HasSuffix(s, "$"):
		s = s[:len(s)-1]
	}
	return s
}

// replaceUnescaped replaces every c that is not directly preceded by a
// backslash in s.
func replaceUnescaped(s string, c byte, repl string) string {
	if strings.IndexByte(s, c) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == c && (i == 0 || s[i-1] != '\\') {
			b.WriteString(repl)
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// dropEscapes removes each backslash that is not followed by another backslash.
func dropEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && (i+1 >= len(s) || s[i+1] != '\\') {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// repeatMin rewrites "<atom>{min,max}" as the atom repeated min times.
func repeatMin(re *regexp.Regexp, s string) string {
	return replaceSubmatch(re, s, func(m []string) string {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return m[0]
		}
		return strings.Repeat(m[1], n)
	})
}

// replaceSubmatch is ReplaceAllStringFunc with access to submatches.
func replaceSubmatch(re *regexp.Regexp, s string, fn func(m []string) string) string {
	idx := re.FindAllStringSubmatchIndex(s, -1)
	if idx == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range idx {
		b.WriteString(s[last:loc[0]])
		m := make([]string, len(loc)/2)
		for g := range m {
			if loc[2*g] >= 0 {
				m[g] = s[loc[2*g]:loc[2*g+1]]
			}
		}
		b.WriteString(fn(m))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
