// Package registry holds the static catalogs of the CMake language: command
// names, parameter shapes, subcommands, properties and standard variables.
// Nothing in this package changes after init.
package registry

import (
	"sort"
	"strings"
)

// CommandID identifies a built-in CMake command.
type CommandID int

const (
	NoCommand CommandID = iota
	AddCompileDefinitions
	AddCompileOptions
	AddCustomCommand
	AddCustomTarget
	AddDefinitions
	AddDependencies
	AddExecutable
	AddLibrary
	AddLinkOptions
	AddSubdirectory
	AddTest
	AuxSourceDirectory
	Break
	BuildCommand
	CMakeMinimumRequired
	CMakeParseArguments
	CMakePolicy
	ConfigureFile
	Continue
	CreateTestSourcelist
	DefineProperty
	Else
	ElseIf
	EnableLanguage
	EnableTesting
	EndForEach
	EndFunction
	EndIf
	EndMacro
	EndWhile
	ExecuteProcess
	Export
	File
	FindFile
	FindLibrary
	FindPackage
	FindPath
	FindProgram
	FLTKWrapUI
	ForEach
	Function
	GetCMakeProperty
	GetDirectoryProperty
	GetFilenameComponent
	GetProperty
	GetSourceFileProperty
	GetTargetProperty
	GetTestProperty
	If
	Include
	IncludeDirectories
	IncludeExternalMSProject
	IncludeGuard
	IncludeRegularExpression
	Install
	LinkDirectories
	LinkLibraries
	List
	LoadCache
	LoadCommand
	Macro
	MarkAsAdvanced
	Math
	Message
	Option
	Project
	QtWrapCpp
	QtWrapUI
	RemoveDefinitions
	Return
	SeparateArguments
	Set
	SetDirectoryProperties
	SetProperty
	SetSourceFilesProperties
	SetTargetProperties
	SetTestsProperties
	SiteName
	SourceGroup
	String
	TargetCompileDefinitions
	TargetCompileFeatures
	TargetCompileOptions
	TargetIncludeDirectories
	TargetLinkDirectories
	TargetLinkLibraries
	TargetLinkOptions
	TargetSources
	TryCompile
	TryRun
	Unset
	VariableWatch
	While

	numCommands
)

var commandNames = [numCommands]string{
	AddCompileDefinitions:    "add_compile_definitions",
	AddCompileOptions:        "add_compile_options",
	AddCustomCommand:         "add_custom_command",
	AddCustomTarget:          "add_custom_target",
	AddDefinitions:           "add_definitions",
	AddDependencies:          "add_dependencies",
	AddExecutable:            "add_executable",
	AddLibrary:               "add_library",
	AddLinkOptions:           "add_link_options",
	AddSubdirectory:          "add_subdirectory",
	AddTest:                  "add_test",
	AuxSourceDirectory:       "aux_source_directory",
	Break:                    "break",
	BuildCommand:             "build_command",
	CMakeMinimumRequired:     "cmake_minimum_required",
	CMakeParseArguments:      "cmake_parse_arguments",
	CMakePolicy:              "cmake_policy",
	ConfigureFile:            "configure_file",
	Continue:                 "continue",
	CreateTestSourcelist:     "create_test_sourcelist",
	DefineProperty:           "define_property",
	Else:                     "else",
	ElseIf:                   "elseif",
	EnableLanguage:           "enable_language",
	EnableTesting:            "enable_testing",
	EndForEach:               "endforeach",
	EndFunction:              "endfunction",
	EndIf:                    "endif",
	EndMacro:                 "endmacro",
	EndWhile:                 "endwhile",
	ExecuteProcess:           "execute_process",
	Export:                   "export",
	File:                     "file",
	FindFile:                 "find_file",
	FindLibrary:              "find_library",
	FindPackage:              "find_package",
	FindPath:                 "find_path",
	FindProgram:              "find_program",
	FLTKWrapUI:               "fltk_wrap_ui",
	ForEach:                  "foreach",
	Function:                 "function",
	GetCMakeProperty:         "get_cmake_property",
	GetDirectoryProperty:     "get_directory_property",
	GetFilenameComponent:     "get_filename_component",
	GetProperty:              "get_property",
	GetSourceFileProperty:    "get_source_file_property",
	GetTargetProperty:        "get_target_property",
	GetTestProperty:          "get_test_property",
	If:                       "if",
	Include:                  "include",
	IncludeDirectories:       "include_directories",
	IncludeExternalMSProject: "include_external_msproject",
	IncludeGuard:             "include_guard",
	IncludeRegularExpression: "include_regular_expression",
	Install:                  "install",
	LinkDirectories:          "link_directories",
	LinkLibraries:            "link_libraries",
	List:                     "list",
	LoadCache:                "load_cache",
	LoadCommand:              "load_command",
	Macro:                    "macro",
	MarkAsAdvanced:           "mark_as_advanced",
	Math:                     "math",
	Message:                  "message",
	Option:                   "option",
	Project:                  "project",
	QtWrapCpp:                "qt_wrap_cpp",
	QtWrapUI:                 "qt_wrap_ui",
	RemoveDefinitions:        "remove_definitions",
	Return:                   "return",
	SeparateArguments:        "separate_arguments",
	Set:                      "set",
	SetDirectoryProperties:   "set_directory_properties",
	SetProperty:              "set_property",
	SetSourceFilesProperties: "set_source_files_properties",
	SetTargetProperties:      "set_target_properties",
	SetTestsProperties:       "set_tests_properties",
	SiteName:                 "site_name",
	SourceGroup:              "source_group",
	String:                   "string",
	TargetCompileDefinitions: "target_compile_definitions",
	TargetCompileFeatures:    "target_compile_features",
	TargetCompileOptions:     "target_compile_options",
	TargetIncludeDirectories: "target_include_directories",
	TargetLinkDirectories:    "target_link_directories",
	TargetLinkLibraries:      "target_link_libraries",
	TargetLinkOptions:        "target_link_options",
	TargetSources:            "target_sources",
	TryCompile:               "try_compile",
	TryRun:                   "try_run",
	Unset:                    "unset",
	VariableWatch:            "variable_watch",
	While:                    "while",
}

var commandsByName map[string]CommandID

// sortedCommands is every command name in lexical order.
var sortedCommands []string

func init() {
	commandsByName = make(map[string]CommandID, numCommands)
	for id := CommandID(1); id < numCommands; id++ {
		commandsByName[commandNames[id]] = id
		sortedCommands = append(sortedCommands, commandNames[id])
	}
	sort.Strings(sortedCommands)
}

// LookupCommand returns the identifier of the named command. The lookup is
// case-insensitive; unknown names yield NoCommand.
func LookupCommand(name string) CommandID {
	return commandsByName[strings.ToLower(name)]
}

// IsCommand reports whether name is a built-in command.
func IsCommand(name string) bool {
	return LookupCommand(name) != NoCommand
}

// Name returns the lower-case name of the command, or "" for NoCommand and
// out-of-range values.
func (id CommandID) Name() string {
	if id <= NoCommand || id >= numCommands {
		return ""
	}
	return commandNames[id]
}

func (id CommandID) String() string {
	if name := id.Name(); name != "" {
		return name
	}
	return "<none>"
}

// Valid reports whether id names a built-in command.
func (id CommandID) Valid() bool {
	return id > NoCommand && id < numCommands
}

// Commands returns all built-in command names in lexical order.
func Commands() []string {
	out := make([]string, len(sortedCommands))
	copy(out, sortedCommands)
	return out
}
