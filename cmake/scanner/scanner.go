// Package scanner classifies the characters of a CMake script into tokens,
// one line at a time. The nesting context that spans lines is carried in a
// State value that callers thread from one line into the next.
package scanner

import (
	"strings"

	"github.com/dhamidi/cmakels/cmake/registry"
)

// Scanner produces the tokens of a single line lazily.
type Scanner struct {
	line  string
	pos   int
	state State
}

// New returns a scanner positioned at the start of line, starting from the
// state left by the previous line.
func New(line string, state State) *Scanner {
	return &Scanner{line: line, state: state}
}

// State returns the state after the most recently returned token. Once Next
// reports false it is the state to pass to the following line.
func (s *Scanner) State() State {
	return s.state
}

// Scan tokenizes a whole line. The result depends only on its arguments.
func Scan(line string, state State) ([]Token, State) {
	s := New(line, state)
	var toks []Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, s.state
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.line) {
		return 0
	}
	return s.line[s.pos]
}

func (s *Scanner) peekN(n int) byte {
	if s.pos+n >= len(s.line) {
		return 0
	}
	return s.line[s.pos+n]
}

func (s *Scanner) advance() {
	if s.pos < len(s.line) {
		s.pos++
	}
}

func (s *Scanner) token(kind TokenKind, start int) Token {
	return Token{Kind: kind, Start: start, End: s.pos}
}

// Next returns the next token on the line. ok is false at the end of the
// line.
func (s *Scanner) Next() (tok Token, ok bool) {
	if s.pos >= len(s.line) {
		return Token{}, false
	}
	start := s.pos

	if s.state.InComment() {
		return s.scanBracketCommentBody(start), true
	}
	if s.state.InString() {
		return s.scanStringBody(start), true
	}

	ch := s.peek()
	switch {
	case ch == '#':
		return s.scanComment(start), true
	case isSpace(ch):
		return s.scanWhiteSpace(start), true
	case ch == '"':
		s.state = s.state.with(awaitParen, false)
		s.advance()
		return s.scanStringBody(start), true
	case ch == '(':
		return s.scanOpenParen(start), true
	case ch == ')':
		return s.scanCloseParen(start), true
	case ch == '{' || ch == '}':
		s.advance()
		s.state = s.state.with(awaitParen, false)
		return s.token(TokenOther, start), true
	case ch == '$':
		if n, kind := s.variableStart(); n > 0 {
			s.pos += n
			s.state = s.state.with(awaitParen, false)
			tok := s.token(kind, start)
			tok.Trigger = TriggerMemberSelect
			return tok, true
		}
		return s.scanIdentifier(start), true
	default:
		return s.scanIdentifier(start), true
	}
}

// variableStart reports the length and kind of a variable reference opener
// at the current position, or 0 when there is none.
func (s *Scanner) variableStart() (int, TokenKind) {
	rest := s.line[s.pos:]
	switch {
	case strings.HasPrefix(rest, "${"):
		return 2, TokenVariableStart
	case strings.HasPrefix(rest, "$ENV{"):
		return 5, TokenVariableStartEnv
	case strings.HasPrefix(rest, "$CACHE{"):
		return 7, TokenVariableStartCache
	}
	return 0, TokenOther
}

func (s *Scanner) scanWhiteSpace(start int) Token {
	for isSpace(s.peek()) {
		s.advance()
	}
	tok := s.token(TokenWhiteSpace, start)
	if s.state.ParenDepth() == 1 {
		tok.Trigger = TriggerParameterNext | TriggerMemberSelect
	}
	return tok
}

func (s *Scanner) scanComment(start int) Token {
	s.advance()
	if s.peek() == '[' {
		level := 0
		for s.peekN(1+level) == '=' {
			level++
		}
		if s.peekN(1+level) == '[' {
			s.pos += 2 + level
			s.state = s.state.with(inComment, true).withCommentLevel(level)
			return s.scanBracketCommentBody(start)
		}
	}
	s.pos = len(s.line)
	return s.token(TokenComment, start)
}

func (s *Scanner) scanBracketCommentBody(start int) Token {
	closing := "]" + strings.Repeat("=", s.state.commentLevel()) + "]"
	if i := strings.Index(s.line[s.pos:], closing); i >= 0 {
		s.pos += i + len(closing)
		s.state = s.state.with(inComment, false).withCommentLevel(0)
	} else {
		s.pos = len(s.line)
	}
	return s.token(TokenComment, start)
}

// scanStringBody consumes a quoted string up to and including its closing
// quote. An unterminated string runs to the end of the line and leaves the
// state inside the string.
func (s *Scanner) scanStringBody(start int) Token {
	for s.pos < len(s.line) {
		switch s.peek() {
		case '\\':
			s.advance()
			s.advance()
		case '"':
			s.advance()
			s.state = s.state.with(inString, false)
			return s.token(TokenStringLiteral, start)
		default:
			s.advance()
		}
	}
	s.state = s.state.with(inString, true)
	return s.token(TokenStringLiteral, start)
}

func (s *Scanner) scanOpenParen(start int) Token {
	s.advance()
	tok := s.token(TokenOpenParen, start)
	depth := s.state.ParenDepth()
	switch {
	case depth > 0:
		s.state = s.state.withDepth(depth + 1)
	case s.state.awaitingParen():
		s.state = s.state.withDepth(1).with(awaitParen, false)
		tok.Trigger = TriggerParameterStart | TriggerMemberSelect
	}
	return tok
}

func (s *Scanner) scanCloseParen(start int) Token {
	s.advance()
	tok := s.token(TokenCloseParen, start)
	depth := s.state.ParenDepth()
	if depth > 0 {
		s.state = s.state.withDepth(depth - 1)
		if depth == 1 {
			tok.Trigger = TriggerParameterEnd
		}
	} else {
		s.state = s.state.with(awaitParen, false)
	}
	return tok
}

func (s *Scanner) scanIdentifier(start int) Token {
	for s.pos < len(s.line) {
		ch := s.peek()
		if isSpace(ch) || isDelimiter(ch) {
			break
		}
		if ch == '$' {
			if n, _ := s.variableStart(); n > 0 {
				break
			}
		}
		if ch == '\\' {
			s.advance()
		}
		s.advance()
	}
	if s.pos == start {
		s.advance()
		return s.token(TokenOther, start)
	}

	tok := s.token(TokenIdentifier, start)
	if s.state.InsideParens() {
		return tok
	}

	id := registry.LookupCommand(tok.Text(s.line))
	if id != registry.NoCommand {
		tok.Kind = TokenKeyword
		tok.Command = id
	}
	s.state = s.state.withCommand(id).with(awaitParen, true)
	return tok
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
}

func isDelimiter(ch byte) bool {
	switch ch {
	case '(', ')', '"', '{', '}':
		return true
	}
	return false
}
