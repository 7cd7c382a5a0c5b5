package registry

import (
	"strings"
)

// Parameter is one slot of a command signature.
type Parameter struct {
	Name     string
	Optional bool
	Variadic bool
}

// String renders the parameter the way it is shown in a call tip:
// "name", "[name]" or "name1 name2 ...".
func (p Parameter) String() string {
	s := p.Name
	if p.Variadic {
		s = p.Name + "1 " + p.Name + "2 ..."
	}
	if p.Optional {
		s = "[" + s + "]"
	}
	return s
}

// params builds a descriptor from the display notation used in the tables
// below: "[x]" marks an optional slot and "x1 x2 ..." a variadic one.
func params(slots ...string) []Parameter {
	out := make([]Parameter, 0, len(slots))
	for _, slot := range slots {
		out = append(out, parseParameter(slot))
	}
	return out
}

func parseParameter(slot string) Parameter {
	var p Parameter
	if strings.HasPrefix(slot, "[") && strings.HasSuffix(slot, "]") {
		p.Optional = true
		slot = slot[1 : len(slot)-1]
	}
	if strings.HasSuffix(slot, " ...") {
		p.Variadic = true
		first, _, _ := strings.Cut(slot, " ")
		slot = strings.TrimRight(first, "0123456789")
	}
	p.Name = slot
	return p
}

var (
	noParams           = params()
	expressionParams   = params("expression")
	optionalExpression = params("[expression]")
	variableParams     = params("variable")
	findFileParams     = params("variable", "name", "[path ...]")
	functionParams     = params("name", "arg ...")
	getCMakeProperty   = params("variable", "property")
	directoryListParam = params("directory ...")
	endFunctionParams  = params("[name]")
	addExecutableParam = params("name", "source ...")
	targetItemsParams  = params("target", "item ...")
)

var parameters = map[CommandID][]Parameter{
	AddCompileDefinitions:    params("definition ..."),
	AddCompileOptions:        params("option ..."),
	AddCustomTarget:          params("name", "[command ...]"),
	AddDefinitions:           params("flag ..."),
	AddDependencies:          params("target_name", "depend_target ..."),
	AddExecutable:            addExecutableParam,
	AddLibrary:               addExecutableParam,
	AddLinkOptions:           params("option ..."),
	AddSubdirectory:          params("source_dir", "[binary_dir]"),
	AddTest:                  params("test_name", "exe_name", "arg ..."),
	AuxSourceDirectory:       params("dir", "variable"),
	Break:                    noParams,
	BuildCommand:             variableParams,
	CMakeMinimumRequired:     params("VERSION", "version"),
	CMakeParseArguments:      params("prefix", "options", "one_value_keywords", "multi_value_keywords", "arg ..."),
	ConfigureFile:            params("input", "output"),
	Continue:                 noParams,
	Else:                     optionalExpression,
	ElseIf:                   expressionParams,
	EnableLanguage:           params("language_name"),
	EnableTesting:            noParams,
	EndForEach:               optionalExpression,
	EndFunction:              endFunctionParams,
	EndIf:                    optionalExpression,
	EndMacro:                 endFunctionParams,
	EndWhile:                 optionalExpression,
	FindFile:                 findFileParams,
	FindLibrary:              findFileParams,
	FindPath:                 findFileParams,
	FindProgram:              findFileParams,
	FLTKWrapUI:               params("resulting_library_name", "source ..."),
	ForEach:                  params("loop_variable", "arg ..."),
	Function:                 functionParams,
	GetCMakeProperty:         getCMakeProperty,
	GetDirectoryProperty:     getCMakeProperty,
	GetFilenameComponent:     params("variable", "filename", "component"),
	GetSourceFileProperty:    params("variable", "filename", "property"),
	GetTargetProperty:        params("variable", "target", "property"),
	GetTestProperty:          params("test", "property", "variable"),
	If:                       expressionParams,
	Include:                  params("file", "[OPTIONAL]"),
	IncludeDirectories:       directoryListParam,
	IncludeExternalMSProject: params("project_name", "location", "dependency ..."),
	IncludeRegularExpression: params("regex_match", "[regex_complain]"),
	LinkDirectories:          directoryListParam,
	LinkLibraries:            params("library ..."),
	Macro:                    functionParams,
	MarkAsAdvanced:           params("variable ..."),
	Math:                     params("EXPR", "output_variable", "expression"),
	Message:                  params("[mode]", "message"),
	Option:                   params("variable", "help_string", "[initial_value]"),
	Project:                  params("project_name", "[language ...]"),
	RemoveDefinitions:        params("flag ..."),
	Return:                   noParams,
	SeparateArguments:        variableParams,
	Set:                      params("variable", "value"),
	SiteName:                 variableParams,
	SourceGroup:              params("name"),
	TargetCompileDefinitions: params("target", "scope", "definition ..."),
	TargetCompileFeatures:    params("target", "scope", "feature ..."),
	TargetCompileOptions:     params("target", "scope", "option ..."),
	TargetIncludeDirectories: params("target", "scope", "directory ..."),
	TargetLinkDirectories:    params("target", "scope", "directory ..."),
	TargetLinkLibraries:      targetItemsParams,
	TargetLinkOptions:        params("target", "scope", "option ..."),
	TargetSources:            params("target", "scope", "source ..."),
	Unset:                    variableParams,
	VariableWatch:            params("variable", "[command]"),
	While:                    expressionParams,
}

// Parameters returns the signature of a command, or nil when none is known.
func Parameters(id CommandID) []Parameter {
	return parameters[id]
}

// HasParameters reports whether a signature is known for the command. A
// command that takes no arguments still has a (empty) signature.
func HasParameters(id CommandID) bool {
	_, ok := parameters[id]
	return ok
}

// QuickInfo returns the one-line summary of a command, e.g.
// "add_subdirectory(source_dir [binary_dir])".
func QuickInfo(id CommandID) string {
	ps, ok := parameters[id]
	if !ok {
		return ""
	}
	return FormatSignature(id.Name(), ps)
}

// FormatSignature joins a command name and parameter list the way QuickInfo
// does, for signatures that are not in the static tables.
func FormatSignature(name string, ps []Parameter) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return name + "(" + strings.Join(names, " ") + ")"
}
