package markers

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TopLevelFunctions returns the names of the functions a Python module
// defines at top level, in source order. Only `def` and `async def`
// statements starting in column zero of a logical line count: methods,
// nested functions, and text inside strings, comments or bracketed
// continuations are ignored.
func TopLevelFunctions(src []byte) []string {
	s := strings.TrimPrefix(string(src), "\ufeff")

	var names []string
	depth := 0
	lineStart := true

	for i := 0; i < len(s); {
		if lineStart {
			lineStart = false
			if depth == 0 {
				if name, ok := matchDef(s[i:]); ok {
					names = append(names, name)
				}
			}
		}

		switch c := s[i]; c {
		case '#':
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		case '\'', '"':
			i = skipString(s, i)
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '\\':
			// Explicit line joining: the next physical line continues this one.
			if strings.HasPrefix(s[i+1:], "\n") {
				i += 2
				continue
			}
			if strings.HasPrefix(s[i+1:], "\r\n") {
				i += 3
				continue
			}
		case '\n':
			lineStart = true
		}
		i++
	}

	return names
}

// matchDef reports the function name if s begins with a def statement.
func matchDef(s string) (string, bool) {
	rest, ok := cutKeyword(s, "async")
	if ok {
		s = rest
	}
	rest, ok = cutKeyword(s, "def")
	if !ok {
		return "", false
	}
	return identifier(rest)
}

// cutKeyword strips kw and the whitespace after it; kw must be followed by
// at least one space or tab.
func cutKeyword(s, kw string) (string, bool) {
	if !strings.HasPrefix(s, kw) || len(s) == len(kw) {
		return s, false
	}
	rest := s[len(kw):]
	trimmed := strings.TrimLeft(rest, " \t")
	if len(trimmed) == len(rest) {
		return s, false
	}
	return trimmed, true
}

// identifier returns the Python identifier at the start of s.
func identifier(s string) (string, bool) {
	end := 0
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if r == '_' || unicode.IsLetter(r) || (end > 0 && unicode.IsDigit(r)) {
			end += size
			continue
		}
		break
	}
	if end == 0 {
		return "", false
	}
	return s[:end], true
}

// skipString returns the index just past the string literal starting at
// the quote s[i]. Single-quoted strings also end at a newline so an
// unterminated literal cannot swallow the rest of the file.
func skipString(s string, i int) int {
	q := s[i]
	triple := strings.Repeat(string(q), 3)

	if strings.HasPrefix(s[i:], triple) {
		j := i + 3
		for j < len(s) {
			if s[j] == '\\' {
				j += 2
				continue
			}
			if strings.HasPrefix(s[j:], triple) {
				return j + 3
			}
			j++
		}
		return len(s)
	}

	j := i + 1
	for j < len(s) {
		switch s[j] {
		case '\\':
			j += 2
			continue
		case q:
			return j + 1
		case '\n':
			return j
		}
		j++
	}
	return len(s)
}
