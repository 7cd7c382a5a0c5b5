package registry

import (
	"sort"
	"strings"
)

// A subcommand catalog maps keyword to parameter shape. A nil shape marks a
// structurally open subcommand that has no fixed signature.
type subcommandCatalog map[string][]Parameter

var (
	fileReadParams       = params("filename", "variable")
	fileAppendParams     = params("filename", "message")
	fileGlobParams       = params("variable", "glob ...")
	fileRemoveParams     = params("filename ...")
	fileToPathParams     = params("path", "variable")
	stringConfigure      = params("string", "output_variable")
	stringHashParams     = params("output_variable", "input")
	listSingleParams     = params("list")
	cmakePolicyNoParams  = params()
	objectKindSubcommand = subcommandCatalog{
		"DIRECTORY": nil,
		"GLOBAL":    nil,
		"SOURCE":    nil,
		"TARGET":    nil,
		"TEST":      nil,
	}
)

var subcommands = map[CommandID]subcommandCatalog{
	CMakePolicy: {
		"GET":     params("policy_number", "output_variable"),
		"POP":     cmakePolicyNoParams,
		"PUSH":    cmakePolicyNoParams,
		"SET":     params("policy_number", "behavior"),
		"VERSION": params("version_number"),
	},
	DefineProperty: withKinds(objectKindSubcommand, "CACHED_VARIABLE", "VARIABLE"),
	Export: {
		"PACKAGE": params("name"),
		"TARGETS": nil,
	},
	File: {
		"APPEND":         fileAppendParams,
		"DOWNLOAD":       params("url", "filename"),
		"GLOB":           fileGlobParams,
		"GLOB_RECURSE":   fileGlobParams,
		"MAKE_DIRECTORY": params("directory ..."),
		"MD5":            fileReadParams,
		"READ":           fileReadParams,
		"RELATIVE_PATH":  params("variable", "directory", "filename"),
		"REMOVE":         fileRemoveParams,
		"REMOVE_RECURSE": fileRemoveParams,
		"RENAME":         params("old_name", "new_name"),
		"SHA1":           fileReadParams,
		"SHA224":         fileReadParams,
		"SHA256":         fileReadParams,
		"SHA384":         fileReadParams,
		"SHA512":         fileReadParams,
		"STRINGS":        fileReadParams,
		"TO_CMAKE_PATH":  fileToPathParams,
		"TO_NATIVE_PATH": fileToPathParams,
		"UPLOAD":         params("filename", "url"),
		"WRITE":          fileAppendParams,
	},
	Install: {
		"CODE":      nil,
		"DIRECTORY": nil,
		"EXPORT":    nil,
		"FILES":     nil,
		"PROGRAMS":  nil,
		"SCRIPT":    nil,
		"TARGETS":   nil,
	},
	List: {
		"APPEND":            params("list", "element ..."),
		"FIND":              params("list", "value", "output_variable"),
		"GET":               params("list", "index", "output_variable"),
		"INSERT":            params("list", "index", "element ..."),
		"LENGTH":            params("list", "output_variable"),
		"REMOVE_AT":         params("list", "index ..."),
		"REMOVE_DUPLICATES": listSingleParams,
		"REMOVE_ITEM":       params("list", "value ..."),
		"REVERSE":           listSingleParams,
		"SORT":              listSingleParams,
	},
	SetProperty: withKinds(objectKindSubcommand, "CACHE"),
	String: {
		"ASCII":     params("number", "output_variable"),
		"CONFIGURE": stringConfigure,
		"FIND":      params("string", "substring", "output_variable"),
		"LENGTH":    stringConfigure,
		"MD5":       stringHashParams,
		"RANDOM":    params("output_variable"),
		"REGEX":     nil,
		"REPLACE":   params("match_string", "replace_string", "output_variable", "input ..."),
		"SHA1":      stringHashParams,
		"SHA224":    stringHashParams,
		"SHA256":    stringHashParams,
		"SHA384":    stringHashParams,
		"SHA512":    stringHashParams,
		"STRIP":     stringConfigure,
		"SUBSTRING": params("string", "begin_index", "length", "output_variable"),
		"TOLOWER":   stringConfigure,
		"TOUPPER":   stringConfigure,
	},
}

func withKinds(base subcommandCatalog, extra ...string) subcommandCatalog {
	out := make(subcommandCatalog, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for _, k := range extra {
		out[k] = nil
	}
	return out
}

// HasSubcommands reports whether the command selects its shape with a
// keyword in the first argument.
func HasSubcommands(id CommandID) bool {
	_, ok := subcommands[id]
	return ok
}

// Subcommands returns the subcommand keywords of a command in lexical order,
// or nil when the command has none.
func Subcommands(id CommandID) []string {
	catalog, ok := subcommands[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SubcommandsWithCommands lists every command that has a subcommand catalog.
func SubcommandsWithCommands() []CommandID {
	out := make([]CommandID, 0, len(subcommands))
	for id := range subcommands {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SubcommandParameters returns the parameter shape of a subcommand. ok is
// false when the subcommand is unknown or has no fixed shape.
func SubcommandParameters(id CommandID, subcommand string) (ps []Parameter, ok bool) {
	catalog, found := subcommands[id]
	if !found {
		return nil, false
	}
	ps, found = catalog[strings.ToUpper(subcommand)]
	if !found || ps == nil {
		return nil, false
	}
	return ps, true
}
