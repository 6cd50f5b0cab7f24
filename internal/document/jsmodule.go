// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"errors"
	"regexp"
	"strings"
)

var (
	errUnterminatedString  = errors.New("unterminated string literal")
	errUnterminatedComment = errors.New("unterminated block comment")
	errUnbalancedBraces    = errors.New("unbalanced braces")
	errUnbalancedParens    = errors.New("unbalanced parentheses")
)

// exportMarkers are checked in order; the first one present wins.
var exportMarkers = []string{"module.exports", "export default"}

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*`)

// normalizeJSModule turns a JS config module into a YAML flow mapping.
//
// Only the object literal of the default export is kept. Comments are
// dropped, strings are re-quoted for YAML, and require('x') / require('x')(opts)
// become "x" / {name: "x", options: opts}.
func normalizeJSModule(src []byte) ([]byte, error) {
	code, err := stripComments(string(src))
	if err != nil {
		return nil, syntaxError(err)
	}

	literal, err := exportedLiteral(code)
	if err != nil {
		return nil, err
	}

	out, err := rewriteLiteral(literal)
	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}

// stripComments removes // and /* */ comments outside of string literals.
func stripComments(src string) (string, error) {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			end, err := skipString(src, i)
			if err != nil {
				return "", err
			}
			b.WriteString(src[i:end])
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return "", errUnterminatedComment
			}
			b.WriteByte(' ')
			i += end + 4
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

// skipString returns the index just past the string literal starting at i.
func skipString(src string, i int) (int, error) {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1, nil
		case '\n':
			if quote != '`' {
				return 0, errUnterminatedString
			}
		}
	}
	return 0, errUnterminatedString
}

// exportedLiteral returns the object literal exported by the module. The
// export may name a variable declared earlier with const, let or var.
func exportedLiteral(code string) (string, error) {
	rest, ok := afterExportMarker(code)
	if !ok {
		return "", malformed("", "module has no `module.exports =` or `export default`")
	}

	if name := identPattern.FindString(rest); name != "" {
		decl := regexp.MustCompile(`\b(?:const|let|var)\s+` + regexp.QuoteMeta(name) + `\s*=\s*`)
		loc := decl.FindStringIndex(code)
		if loc == nil {
			return "", malformed("", "exported identifier `"+name+"` is not declared in the module")
		}
		rest = code[loc[1]:]
		literal, _, err := objectLiteral(rest)
		return literal, err
	}

	literal, tail, err := objectLiteral(rest)
	if err != nil {
		return "", err
	}
	if tail = strings.TrimSpace(tail); tail != "" && tail != ";" {
		return "", malformed("", "unexpected code after the exported object")
	}

	return literal, nil
}

func afterExportMarker(code string) (string, bool) {
	for _, marker := range exportMarkers {
		i := strings.Index(code, marker)
		if i < 0 {
			continue
		}
		rest := strings.TrimSpace(code[i+len(marker):])
		if marker == "module.exports" {
			if !strings.HasPrefix(rest, "=") {
				return "", false
			}
			rest = strings.TrimSpace(rest[1:])
		}
		return rest, true
	}
	return "", false
}

// objectLiteral splits s into the leading {...} literal and the remainder.
func objectLiteral(s string) (literal, tail string, err error) {
	if !strings.HasPrefix(s, "{") {
		return "", "", malformed("", "default export is not an object literal")
	}

	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'', '"', '`':
			end, err := skipString(s, i)
			if err != nil {
				return "", "", syntaxError(err)
			}
			i = end - 1
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], s[i+1:], nil
			}
		}
	}

	return "", "", syntaxError(errUnbalancedBraces)
}

type literalRewriter struct {
	src string
	pos int
	out strings.Builder

	// parens holds one entry per open '('; true marks the argument list of
	// a require('x')(...) plugin call, whose ')' closes the emitted mapping.
	parens []bool
}

func rewriteLiteral(src string) (string, error) {
	r := &literalRewriter{src: src}
	r.out.Grow(len(src))

	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch {
		case c == '\'' || c == '"':
			s, err := r.readString()
			if err != nil {
				return "", err
			}
			r.out.WriteString(s)
		case c == '`':
			return "", malformed("", "template literals are not supported")
		case c == ':':
			// YAML only treats ':' as a separator when a space follows.
			r.out.WriteString(": ")
			r.pos++
		case c == '\t':
			r.out.WriteByte(' ')
			r.pos++
		case c == '(':
			r.parens = append(r.parens, false)
			r.out.WriteByte('(')
			r.pos++
		case c == ')':
			r.pos++
			if n := len(r.parens); n > 0 {
				closesCall := r.parens[n-1]
				r.parens = r.parens[:n-1]
				if closesCall {
					r.out.WriteByte('}')
					continue
				}
			}
			r.out.WriteByte(')')
		case isDigit(c) || (c == '.' && r.pos+1 < len(r.src) && isDigit(r.src[r.pos+1])):
			r.out.WriteString(r.readNumber())
		case c == '.':
			if strings.HasPrefix(r.src[r.pos:], "...") {
				return "", malformed("", "spread syntax is not supported")
			}
			return "", malformed("", "unsupported expression at `"+r.context()+"`")
		case isIdentStart(c):
			word := r.readIdent()
			switch {
			case word == "require":
				if err := r.rewriteRequire(); err != nil {
					return "", err
				}
			case word == "true" || word == "false" || word == "null" || r.peek() == ':':
				r.out.WriteString(word)
			default:
				return "", malformed("", "unsupported expression `"+word+"`")
			}
		case strings.IndexByte(literalPunctuation, c) >= 0:
			r.out.WriteByte(c)
			r.pos++
		default:
			return "", malformed("", "unsupported expression at `"+r.context()+"`")
		}
	}

	if len(r.parens) > 0 {
		return "", syntaxError(errUnbalancedParens)
	}

	return r.out.String(), nil
}

// readString consumes a JS string literal and returns it as a YAML
// double-quoted scalar.
func (r *literalRewriter) readString() (string, error) {
	quote := r.src[r.pos]
	var b strings.Builder
	b.WriteByte('"')

	for i := r.pos + 1; i < len(r.src); i++ {
		c := r.src[i]
		switch {
		case c == '\\':
			if i+1 >= len(r.src) {
				return "", syntaxError(errUnterminatedString)
			}
			next := r.src[i+1]
			switch next {
			case '\'':
				b.WriteByte('\'')
			case '\n':
				// line continuation
			default:
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			i++
		case c == quote:
			b.WriteByte('"')
			r.pos = i + 1
			return b.String(), nil
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			return "", syntaxError(errUnterminatedString)
		default:
			b.WriteByte(c)
		}
	}

	return "", syntaxError(errUnterminatedString)
}

func (r *literalRewriter) readIdent() string {
	start := r.pos
	for r.pos < len(r.src) && isIdentPart(r.src[r.pos]) {
		r.pos++
	}
	return r.src[start:r.pos]
}

// readNumber consumes a numeric literal such as 12, 1.5, .5, 1e3 or 0x1F.
func (r *literalRewriter) readNumber() string {
	start := r.pos
	for r.pos < len(r.src) && (isIdentPart(r.src[r.pos]) || r.src[r.pos] == '.') {
		r.pos++
	}
	return r.src[start:r.pos]
}

// peek returns the next non-space byte without consuming it, or 0 at the end.
func (r *literalRewriter) peek() byte {
	for i := r.pos; i < len(r.src); i++ {
		if !isSpace(r.src[i]) {
			return r.src[i]
		}
	}
	return 0
}

// context returns the source from pos up to the end of the line.
func (r *literalRewriter) context() string {
	rest := r.src[r.pos:]
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(fitWidth(rest, 40))
}

func fitWidth(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (r *literalRewriter) skipSpaces() {
	for r.pos < len(r.src) && isSpace(r.src[r.pos]) {
		r.pos++
	}
}

func (r *literalRewriter) expect(c byte) bool {
	r.skipSpaces()
	if r.pos < len(r.src) && r.src[r.pos] == c {
		r.pos++
		return true
	}
	return false
}

// rewriteRequire is called with pos just past the word "require".
func (r *literalRewriter) rewriteRequire() error {
	badRequire := malformed("plugins", "require() must take a single string literal")

	if !r.expect('(') {
		return badRequire
	}
	r.skipSpaces()
	if r.pos >= len(r.src) || (r.src[r.pos] != '\'' && r.src[r.pos] != '"') {
		return badRequire
	}
	name, err := r.readString()
	if err != nil {
		return err
	}
	if !r.expect(')') {
		return badRequire
	}

	save := r.pos
	if !r.expect('(') {
		r.pos = save
		r.out.WriteString(name)
		return nil
	}
	if r.expect(')') {
		r.out.WriteString(name)
		return nil
	}

	r.out.WriteString("{name: " + name + ", options: ")
	r.parens = append(r.parens, true)
	return nil
}

// literalPunctuation is what may appear between tokens of a plain object
// literal once strings, numbers and keys are consumed.
const literalPunctuation = "{}[],-+ \n\r"

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
