package scanner

import (
	"strings"

	"github.com/dhamidi/cmakels/cmake/registry"
)

type TokenKind int

const (
	TokenOther TokenKind = iota
	TokenKeyword
	TokenIdentifier
	TokenOpenParen
	TokenCloseParen
	TokenWhiteSpace
	TokenVariableStart
	TokenVariableStartEnv
	TokenVariableStartCache
	TokenStringLiteral
	TokenComment
)

var tokenKindNames = map[TokenKind]string{
	TokenOther:              "Other",
	TokenKeyword:            "Keyword",
	TokenIdentifier:         "Identifier",
	TokenOpenParen:          "OpenParen",
	TokenCloseParen:         "CloseParen",
	TokenWhiteSpace:         "WhiteSpace",
	TokenVariableStart:      "VariableStart",
	TokenVariableStartEnv:   "VariableStartEnv",
	TokenVariableStartCache: "VariableStartCache",
	TokenStringLiteral:      "StringLiteral",
	TokenComment:            "Comment",
}

func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Trigger flags tell an editor which requests a token may start.
type Trigger uint8

const (
	TriggerNone Trigger = 0

	// TriggerMemberSelect marks tokens after which a candidate list may open.
	TriggerMemberSelect Trigger = 1 << iota

	// TriggerParameterStart marks the parenthesis that opens a command's
	// argument list.
	TriggerParameterStart

	// TriggerParameterNext marks whitespace separating sibling arguments.
	TriggerParameterNext

	// TriggerParameterEnd marks the parenthesis that closes an argument list.
	TriggerParameterEnd
)

func (t Trigger) Has(flag Trigger) bool {
	return t&flag != 0
}

// Token is a classified run of characters on a single line. Start and End
// are byte offsets into the line; End is exclusive.
type Token struct {
	Kind    TokenKind
	Start   int
	End     int
	Trigger Trigger

	// Command is set on keyword tokens.
	Command registry.CommandID
}

// Text returns the token's characters.
func (t Token) Text(line string) string {
	if t.Start < 0 || t.End > len(line) || t.Start > t.End {
		return ""
	}
	return line[t.Start:t.End]
}

// Contains reports whether the byte offset col falls inside the token.
func (t Token) Contains(col int) bool {
	return col >= t.Start && col < t.End
}

var triggerNames = []struct {
	flag Trigger
	name string
}{
	{TriggerMemberSelect, "MemberSelect"},
	{TriggerParameterStart, "ParameterStart"},
	{TriggerParameterNext, "ParameterNext"},
	{TriggerParameterEnd, "ParameterEnd"},
}

// String joins the set flags with "|", e.g. "MemberSelect|ParameterStart".
func (t Trigger) String() string {
	var names []string
	for _, tn := range triggerNames {
		if t.Has(tn.flag) {
			names = append(names, tn.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
