package cmake

import (
	"sort"

	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/dhamidi/cmakels/cmake/scanner"
)

// Complete returns the candidates for the token that triggered req, or nil
// when the position has no contextual list.
func Complete(src *Source, req Request) (decls *Declarations) {
	defer func() {
		if r := recover(); r != nil {
			logger().Errorf("complete at %s:%d:%d: %v", src.Path, req.Line, req.Column, r)
			decls = nil
		}
	}()

	switch req.Token {
	case scanner.TokenVariableStart:
		return VariableDeclarations(src)
	case scanner.TokenVariableStartEnv:
		return EnvVariableDeclarations(src)
	case scanner.TokenVariableStartCache:
		return CacheVariableDeclarations(src)
	}

	ctx := CommandAtPoint(src.Lines, req.Line, req.Column)
	if !ctx.Found || ctx.Token.Kind != req.Token {
		logger().Debugf("no %s token at %s:%d:%d", req.Token, src.Path, req.Line, req.Column)
		return nil
	}
	switch req.Token {
	case scanner.TokenOpenParen:
		if !ctx.Token.Trigger.Has(scanner.TriggerParameterStart) {
			return nil
		}
		return CreateDeclarations(ctx.Command, src, nil)
	case scanner.TokenWhiteSpace:
		if !ctx.Token.Trigger.Has(scanner.TriggerParameterNext) {
			return nil
		}
		return CreateDeclarations(ctx.Command, src, ctx.Args)
	case scanner.TokenKeyword, scanner.TokenIdentifier:
		if ctx.Inside() {
			return nil
		}
		return CommandDeclarations(src)
	}
	return nil
}

// VariableDeclarations lists the variables that may follow "${": standard
// variables, per-language variables, and those defined in the buffer and
// its includes.
func VariableDeclarations(src *Source) *Declarations {
	d := NewDeclarations()
	d.AddItems(registry.StandardVariables(), ItemVariable)
	d.AddItems(registry.LanguageVariables(LanguagesFromDir(src.Options.ModulesDir)), ItemVariable)
	d.AddItems(variablesIn(src.Lines), ItemVariable)
	if src.Symbols != nil {
		d.AddItems(src.Symbols.Variables(), ItemVariable)
	}
	return d
}

// EnvVariableDeclarations lists the variables that may follow "$ENV{".
func EnvVariableDeclarations(src *Source) *Declarations {
	d := NewDeclarations()
	d.AddItems(registry.StandardEnvVariables(), ItemVariable)
	d.AddItems(envVariablesIn(src.Lines), ItemVariable)
	if src.Symbols != nil {
		d.AddItems(src.Symbols.EnvVariables(), ItemVariable)
	}
	return d
}

// CacheVariableDeclarations lists the variables that may follow "$CACHE{".
func CacheVariableDeclarations(src *Source) *Declarations {
	return cacheObjectDeclarations(registry.NoCommand, src, nil)
}

// CommandDeclarations lists every built-in command and the functions and
// macros visible from the buffer.
func CommandDeclarations(src *Source) *Declarations {
	d := NewDeclarations()
	d.AddItems(registry.Commands(), ItemCommand)
	d.AddItems(ParseForFunctionNames(src.Lines, false), ItemFunction)
	d.AddItems(ParseForFunctionNames(src.Lines, true), ItemFunction)
	if src.Symbols != nil {
		d.AddItems(src.Symbols.Functions(), ItemFunction)
		d.AddItems(src.Symbols.Macros(), ItemFunction)
	}
	return d
}

func sortCommands(ids []registry.CommandID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Name() < ids[j].Name() })
}
