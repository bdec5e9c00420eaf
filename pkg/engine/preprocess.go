package engine

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites query source into something zygomys accepts:
//
//   - :keyword becomes the string literal "__kw_keyword", so keywords never
//     collide with user variables of the same name.
//   - hit-point becomes hit_point. zygomys reads a hyphen inside a symbol as
//     subtraction; a hyphen between a symbol character and a letter is
//     rewritten, so (- a b) and negative numbers are untouched.
//   - ; and ;; line comments become // comments.
//
// String literals, in double quotes or backticks, pass through verbatim.
func preprocessSource(source string) string {
	sc := scanner{src: []byte(source), out: make([]byte, 0, len(source)+len(source)/4)}
	for sc.i < len(sc.src) {
		switch c := sc.src[sc.i]; {
		case c == '"':
			sc.copyQuoted('"', true)
		case c == '`':
			sc.copyQuoted('`', false)
		case c == ';':
			sc.comment()
		case c == ':' && sc.peek(1) == '=':
			sc.copyN(2)
		case c == ':' && isLetter(sc.peek(1)):
			sc.keyword()
		case c == '-' && sc.i > 0 && isIdentChar(sc.src[sc.i-1]) && isLetter(sc.peek(1)):
			sc.out = append(sc.out, '_')
			sc.i++
		default:
			sc.copyN(1)
		}
	}
	return string(sc.out)
}

type scanner struct {
	src []byte
	out []byte
	i   int
}

// peek returns the byte n positions ahead, or 0 past the end.
func (s *scanner) peek(n int) byte {
	if s.i+n < len(s.src) {
		return s.src[s.i+n]
	}
	return 0
}

func (s *scanner) copyN(n int) {
	end := min(s.i+n, len(s.src))
	s.out = append(s.out, s.src[s.i:end]...)
	s.i = end
}

// copyQuoted copies a literal up to and including its closing quote.
func (s *scanner) copyQuoted(quote byte, escapes bool) {
	s.copyN(1)
	for s.i < len(s.src) && s.src[s.i] != quote {
		if escapes && s.src[s.i] == '\\' {
			s.copyN(2)
			continue
		}
		s.copyN(1)
	}
	s.copyN(1)
}

func (s *scanner) comment() {
	s.out = append(s.out, '/', '/')
	for s.i < len(s.src) && s.src[s.i] == ';' {
		s.i++
	}
	for s.i < len(s.src) && s.src[s.i] != '\n' {
		s.copyN(1)
	}
}

func (s *scanner) keyword() {
	j := s.i + 1
	for j < len(s.src) && isKWChar(s.src[j]) {
		j++
	}
	s.out = append(s.out, '"')
	s.out = append(s.out, kwPrefix...)
	s.out = append(s.out, s.src[s.i+1:j]...)
	s.out = append(s.out, '"')
	s.i = j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
