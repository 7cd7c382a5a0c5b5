package scanner

import "github.com/dhamidi/cmakels/cmake/registry"

// State is the scanner state carried from the end of one line into the
// start of the next. The zero value is the state at the top of a file.
//
// Layout:
//
//	bits  0-7   parenthesis depth inside a command's arguments
//	bits  8-15  identifier of the most recent command
//	bit   16    an identifier at depth 0 is waiting for its "("
//	bit   17    inside a quoted string
//	bit   18    inside a bracket comment
//	bits 19-22  number of '=' in the bracket comment delimiter
type State uint32

const (
	depthMask    State = 0xff
	commandShift       = 8
	commandMask  State = 0xff << commandShift
	awaitParen   State = 1 << 16
	inString     State = 1 << 17
	inComment    State = 1 << 18
	levelShift         = 19
	levelMask    State = 0xf << levelShift

	maxDepth = 0xff
	maxLevel = 0xf
)

// ParenDepth returns how deeply nested the scanner is inside a command's
// argument list. Zero means outside any command.
func (s State) ParenDepth() int {
	return int(s & depthMask)
}

// InsideParens reports whether the scanner is inside an argument list.
func (s State) InsideParens() bool {
	return s.ParenDepth() > 0
}

// LastCommand returns the most recently opened built-in command. User
// defined commands reset it to NoCommand.
func (s State) LastCommand() registry.CommandID {
	return registry.CommandID((s & commandMask) >> commandShift)
}

// InString reports whether a quoted string continues onto the next line.
func (s State) InString() bool {
	return s&inString != 0
}

// InComment reports whether a bracket comment continues onto the next line.
func (s State) InComment() bool {
	return s&inComment != 0
}

func (s State) awaitingParen() bool {
	return s&awaitParen != 0
}

func (s State) commentLevel() int {
	return int((s & levelMask) >> levelShift)
}

func (s State) withDepth(depth int) State {
	if depth < 0 {
		depth = 0
	}
	if depth > maxDepth {
		depth = maxDepth
	}
	return (s &^ depthMask) | State(depth)
}

func (s State) withCommand(id registry.CommandID) State {
	return (s &^ commandMask) | (State(id)<<commandShift)&commandMask
}

func (s State) with(flag State, on bool) State {
	if on {
		return s | flag
	}
	return s &^ flag
}

func (s State) withCommentLevel(level int) State {
	if level > maxLevel {
		level = maxLevel
	}
	return (s &^ levelMask) | State(level)<<levelShift
}
