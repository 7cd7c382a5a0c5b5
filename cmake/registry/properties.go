package registry

import "strings"

// PropertyType is the kind of object a property is attached to.
type PropertyType int

const (
	PropertyUnspecified PropertyType = iota
	PropertyGlobal
	PropertyDirectory
	PropertyTarget
	PropertySource
	PropertyTest
	PropertyCache
	PropertyVariable
)

var propertyTypeNames = map[PropertyType]string{
	PropertyGlobal:    "GLOBAL",
	PropertyDirectory: "DIRECTORY",
	PropertyTarget:    "TARGET",
	PropertySource:    "SOURCE",
	PropertyTest:      "TEST",
	PropertyCache:     "CACHE",
	PropertyVariable:  "VARIABLE",
}

// Keyword returns the keyword that names the property type inside
// get_property and set_property, e.g. "TARGET".
func (t PropertyType) Keyword() string {
	return propertyTypeNames[t]
}

func (t PropertyType) String() string {
	if k := t.Keyword(); k != "" {
		return k
	}
	return "UNSPECIFIED"
}

var propertyTypeKeywords = []string{
	"CACHE",
	"DIRECTORY",
	"GLOBAL",
	"SOURCE",
	"TARGET",
	"TEST",
	"VARIABLE",
}

// PropertyTypeKeywords lists the object-kind keywords accepted by
// get_property, in lexical order.
func PropertyTypeKeywords() []string {
	out := make([]string, len(propertyTypeKeywords))
	copy(out, propertyTypeKeywords)
	return out
}

// PropertyTypeFromKeyword maps an object-kind keyword back to its type.
func PropertyTypeFromKeyword(keyword string) PropertyType {
	keyword = strings.ToUpper(keyword)
	for t, k := range propertyTypeNames {
		if k == keyword {
			return t
		}
	}
	return PropertyUnspecified
}

// IsObjectRequired reports whether get_property and set_property need an
// object name after the kind keyword. DIRECTORY defaults to the current
// directory so its object is optional.
func IsObjectRequired(t PropertyType) bool {
	switch t {
	case PropertyTarget, PropertySource, PropertyTest, PropertyCache:
		return true
	}
	return false
}

// PropertyCommand describes where a property-accessing command expects the
// object and the property name. A slot of -1 means the command has no such
// positional slot.
type PropertyCommand struct {
	Type         PropertyType
	ObjectSlot   int
	PropertySlot int
}

var propertyCommands = map[CommandID]PropertyCommand{
	GetCMakeProperty:         {Type: PropertyGlobal, ObjectSlot: -1, PropertySlot: 1},
	GetDirectoryProperty:     {Type: PropertyDirectory, ObjectSlot: -1, PropertySlot: 1},
	GetSourceFileProperty:    {Type: PropertySource, ObjectSlot: 1, PropertySlot: 2},
	GetTargetProperty:        {Type: PropertyTarget, ObjectSlot: 1, PropertySlot: 2},
	GetTestProperty:          {Type: PropertyTest, ObjectSlot: 0, PropertySlot: 1},
	SetDirectoryProperties:   {Type: PropertyDirectory, ObjectSlot: -1, PropertySlot: -1},
	SetSourceFilesProperties: {Type: PropertySource, ObjectSlot: 0, PropertySlot: -1},
	SetTargetProperties:      {Type: PropertyTarget, ObjectSlot: 0, PropertySlot: -1},
	SetTestsProperties:       {Type: PropertyTest, ObjectSlot: 0, PropertySlot: -1},
	GetProperty:              {Type: PropertyUnspecified, ObjectSlot: 2, PropertySlot: -1},
	SetProperty:              {Type: PropertyUnspecified, ObjectSlot: 1, PropertySlot: -1},
}

// LookupPropertyCommand returns the slot layout of a property command.
func LookupPropertyCommand(id CommandID) (PropertyCommand, bool) {
	pc, ok := propertyCommands[id]
	return pc, ok
}

// PropertyTypeFromCommand returns the object kind a command operates on.
func PropertyTypeFromCommand(id CommandID) PropertyType {
	return propertyCommands[id].Type
}

// PropertySlot returns the argument index at which the command expects a
// property name, or -1.
func PropertySlot(id CommandID) int {
	pc, ok := propertyCommands[id]
	if !ok {
		return -1
	}
	return pc.PropertySlot
}

// ObjectSlot returns the argument index at which the command expects the
// object whose property is accessed, or -1.
func ObjectSlot(id CommandID) int {
	pc, ok := propertyCommands[id]
	if !ok {
		return -1
	}
	return pc.ObjectSlot
}

// PropertiesForCommand returns the properties legal for a command's object
// kind, or nil when the command is not a property command.
func PropertiesForCommand(id CommandID) []string {
	pc, ok := propertyCommands[id]
	if !ok {
		return nil
	}
	return PropertiesOfType(pc.Type)
}

// PropertiesOfType returns the properties of an object kind in lexical
// order.
func PropertiesOfType(t PropertyType) []string {
	ps := properties[t]
	out := make([]string, len(ps))
	copy(out, ps)
	return out
}

var properties = map[PropertyType][]string{
	PropertyGlobal: {
		"ALLOW_DUPLICATE_CUSTOM_TARGETS",
		"AUTOGEN_TARGETS_FOLDER",
		"DEBUG_CONFIGURATIONS",
		"DISABLED_FEATURES",
		"ENABLED_FEATURES",
		"ENABLED_LANGUAGES",
		"FIND_LIBRARY_USE_LIB64_PATHS",
		"FIND_LIBRARY_USE_OPENBSD_VERSIONING",
		"GLOBAL_DEPENDS_DEBUG_MODE",
		"GLOBAL_DEPENDS_NO_CYCLES",
		"IN_TRY_COMPILE",
		"PACKAGES_FOUND",
		"PACKAGES_NOT_FOUND",
		"PREDEFINED_TARGETS_FOLDER",
		"REPORT_UNDEFINED_PROPERTIES",
		"RULE_LAUNCH_COMPILE",
		"RULE_LAUNCH_CUSTOM",
		"RULE_LAUNCH_LINK",
		"RULE_MESSAGES",
		"TARGET_ARCHIVES_MAY_BE_SHARED_LIBS",
		"TARGET_SUPPORTS_SHARED_LIBS",
		"USE_FOLDERS",
		"__CMAKE_DELETE_CACHE_CHANGE_VARS_",
	},
	PropertyDirectory: {
		"ADDITIONAL_MAKE_CLEAN_FILES",
		"CACHE_VARIABLES",
		"CLEAN_NO_CUSTOM",
		"COMPILE_DEFINITIONS",
		"COMPILE_OPTIONS",
		"DEFINITIONS",
		"EXCLUDE_FROM_ALL",
		"IMPLICIT_DEPENDS_INCLUDE_TRANSFORM",
		"INCLUDE_DIRECTORIES",
		"INCLUDE_REGULAR_EXPRESSION",
		"INTERPROCEDURAL_OPTIMIZATION",
		"LINK_DIRECTORIES",
		"LISTFILE_STACK",
		"MACROS",
		"PARENT_DIRECTORY",
		"RULE_LAUNCH_COMPILE",
		"RULE_LAUNCH_CUSTOM",
		"RULE_LAUNCH_LINK",
		"TEST_INCLUDE_FILE",
		"VARIABLES",
		"VS_GLOBAL_SECTION_POST_",
		"VS_GLOBAL_SECTION_PRE_",
	},
	PropertyTarget: {
		"ARCHIVE_OUTPUT_DIRECTORY",
		"ARCHIVE_OUTPUT_NAME",
		"AUTOMOC",
		"AUTOMOC_MOC_OPTIONS",
		"BUILD_WITH_INSTALL_RPATH",
		"BUNDLE",
		"BUNDLE_EXTENSION",
		"COMPILE_DEFINITIONS",
		"COMPILE_FLAGS",
		"COMPILE_OPTIONS",
		"CXX_STANDARD",
		"DEBUG_POSTFIX",
		"DEFINE_SYMBOL",
		"ENABLE_EXPORTS",
		"EXCLUDE_FROM_ALL",
		"EXCLUDE_FROM_DEFAULT_BUILD",
		"EXPORT_NAME",
		"FOLDER",
		"FRAMEWORK",
		"GNUtoMS",
		"HAS_CXX",
		"IMPORTED",
		"IMPORTED_CONFIGURATIONS",
		"IMPORTED_IMPLIB",
		"IMPORTED_LINK_DEPENDENT_LIBRARIES",
		"IMPORTED_LINK_INTERFACE_LANGUAGES",
		"IMPORTED_LINK_INTERFACE_LIBRARIES",
		"IMPORTED_LOCATION",
		"IMPORTED_NO_SONAME",
		"IMPORTED_SONAME",
		"IMPORT_PREFIX",
		"IMPORT_SUFFIX",
		"INCLUDE_DIRECTORIES",
		"INSTALL_NAME_DIR",
		"INSTALL_RPATH",
		"INSTALL_RPATH_USE_LINK_PATH",
		"INTERFACE_COMPILE_DEFINITIONS",
		"INTERFACE_INCLUDE_DIRECTORIES",
		"INTERFACE_LINK_LIBRARIES",
		"INTERPROCEDURAL_OPTIMIZATION",
		"LABELS",
		"LIBRARY_OUTPUT_DIRECTORY",
		"LIBRARY_OUTPUT_NAME",
		"LINKER_LANGUAGE",
		"LINK_DEPENDS",
		"LINK_FLAGS",
		"LINK_INTERFACE_LIBRARIES",
		"LINK_INTERFACE_MULTIPLICITY",
		"LINK_LIBRARIES",
		"LINK_SEARCH_END_STATIC",
		"LINK_SEARCH_START_STATIC",
		"LOCATION",
		"MACOSX_BUNDLE",
		"MACOSX_BUNDLE_INFO_PLIST",
		"MACOSX_FRAMEWORK_INFO_PLIST",
		"NO_SONAME",
		"OSX_ARCHITECTURES",
		"OUTPUT_NAME",
		"PDB_NAME",
		"PDB_OUTPUT_DIRECTORY",
		"POSITION_INDEPENDENT_CODE",
		"POST_INSTALL_SCRIPT",
		"PREFIX",
		"PRE_INSTALL_SCRIPT",
		"PRIVATE_HEADER",
		"PROJECT_LABEL",
		"PUBLIC_HEADER",
		"RESOURCE",
		"RULE_LAUNCH_COMPILE",
		"RULE_LAUNCH_CUSTOM",
		"RULE_LAUNCH_LINK",
		"RUNTIME_OUTPUT_DIRECTORY",
		"RUNTIME_OUTPUT_NAME",
		"SKIP_BUILD_RPATH",
		"SOURCES",
		"SOVERSION",
		"STATIC_LIBRARY_FLAGS",
		"SUFFIX",
		"TYPE",
		"VERSION",
		"VS_DOTNET_REFERENCES",
		"VS_GLOBAL_KEYWORD",
		"VS_GLOBAL_PROJECT_TYPES",
		"VS_GLOBAL_ROOTNAMESPACE",
		"VS_KEYWORD",
		"VS_SCC_AUXPATH",
		"VS_SCC_LOCALPATH",
		"VS_SCC_PROJECTNAME",
		"VS_SCC_PROVIDER",
		"VS_WINRT_EXTENSIONS",
		"VS_WINRT_REFERENCES",
		"WIN32_EXECUTABLE",
		"XCODE_ATTRIBUTE_",
	},
	PropertySource: {
		"ABSTRACT",
		"COMPILE_DEFINITIONS",
		"COMPILE_FLAGS",
		"EXTERNAL_OBJECT",
		"Fortran_FORMAT",
		"GENERATED",
		"HEADER_FILE_ONLY",
		"KEEP_EXTENSION",
		"LABELS",
		"LANGUAGE",
		"LOCATION",
		"MACOSX_PACKAGE_LOCATION",
		"OBJECT_DEPENDS",
		"OBJECT_OUTPUTS",
		"SYMBOLIC",
		"VS_DEPLOYMENT_CONTENT",
		"VS_SHADER_TYPE",
		"WRAP_EXCLUDE",
	},
	PropertyTest: {
		"ATTACHED_FILES",
		"ATTACHED_FILES_ON_FAIL",
		"COST",
		"DEPENDS",
		"ENVIRONMENT",
		"FAIL_REGULAR_EXPRESSION",
		"LABELS",
		"MEASUREMENT",
		"PASS_REGULAR_EXPRESSION",
		"PROCESSORS",
		"REQUIRED_FILES",
		"RESOURCE_LOCK",
		"RUN_SERIAL",
		"TIMEOUT",
		"WILL_FAIL",
		"WORKING_DIRECTORY",
	},
	PropertyCache: {
		"ADVANCED",
		"HELPSTRING",
		"MODIFIED",
		"STRINGS",
		"TYPE",
		"VALUE",
	},
	PropertyVariable: {},
}
