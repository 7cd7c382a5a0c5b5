package scanner

// Step is one token seen by Walk together with its surroundings.
type Step struct {
	Line   int
	Text   string
	Token  Token
	Before State
	After  State
}

// TokenText returns the characters of the step's token.
func (s Step) TokenText() string {
	return s.Token.Text(s.Text)
}

// Walk scans lines in order starting from the zero state, threading the
// state from each line into the next, and calls fn for every token. It
// stops early when fn returns false and returns the last state reached.
func Walk(lines []string, fn func(Step) bool) State {
	var state State
	for i, line := range lines {
		sc := New(line, state)
		for {
			before := sc.State()
			tok, ok := sc.Next()
			if !ok {
				break
			}
			if !fn(Step{Line: i, Text: line, Token: tok, Before: before, After: sc.State()}) {
				return sc.State()
			}
		}
		state = sc.State()
	}
	return state
}

// StateAt returns the state at the start of line n.
func StateAt(lines []string, n int) State {
	var state State
	for i := 0; i < n && i < len(lines); i++ {
		_, state = Scan(lines[i], state)
	}
	return state
}
