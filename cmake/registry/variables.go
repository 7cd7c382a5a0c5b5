package registry

import (
	"sort"
	"strings"
)

var standardVariables = []string{
	"APPLE",
	"BORLAND",
	"BUILD_SHARED_LIBS",
	"CMAKE_AR",
	"CMAKE_ARCHIVE_OUTPUT_DIRECTORY",
	"CMAKE_ARGC",
	"CMAKE_ARGV0",
	"CMAKE_AUTOMOC",
	"CMAKE_AUTOMOC_MOC_OPTIONS",
	"CMAKE_AUTOMOC_RELAXED_MODE",
	"CMAKE_BACKWARDS_COMPATIBILITY",
	"CMAKE_BINARY_DIR",
	"CMAKE_BUILD_TOOL",
	"CMAKE_BUILD_TYPE",
	"CMAKE_BUILD_WITH_INSTALL_RPATH",
	"CMAKE_CACHEFILE_DIR",
	"CMAKE_CACHE_MAJOR_VERSION",
	"CMAKE_CACHE_MINOR_VERSION",
	"CMAKE_CACHE_PATCH_VERSION",
	"CMAKE_CFG_INTDIR",
	"CMAKE_CL_64",
	"CMAKE_COLOR_MAKEFILE",
	"CMAKE_COMMAND",
	"CMAKE_COMPILER_2005",
	"CMAKE_CONFIGURATION_TYPES",
	"CMAKE_CROSSCOMPILING",
	"CMAKE_CTEST_COMMAND",
	"CMAKE_CURRENT_BINARY_DIR",
	"CMAKE_CURRENT_LIST_DIR",
	"CMAKE_CURRENT_LIST_FILE",
	"CMAKE_CURRENT_LIST_LINE",
	"CMAKE_CURRENT_SOURCE_DIR",
	"CMAKE_CXX_STANDARD",
	"CMAKE_DEBUG_POSTFIX",
	"CMAKE_DL_LIBS",
	"CMAKE_EDIT_COMMAND",
	"CMAKE_EXECUTABLE_SUFFIX",
	"CMAKE_EXE_LINKER_FLAGS",
	"CMAKE_EXPORT_COMPILE_COMMANDS",
	"CMAKE_EXTRA_GENERATOR",
	"CMAKE_EXTRA_SHARED_LIBRARY_SUFFIXES",
	"CMAKE_FIND_LIBRARY_PREFIXES",
	"CMAKE_FIND_LIBRARY_SUFFIXES",
	"CMAKE_FIND_PACKAGE_WARN_NO_MODULE",
	"CMAKE_GENERATOR",
	"CMAKE_HOME_DIRECTORY",
	"CMAKE_HOST_APPLE",
	"CMAKE_HOST_SYSTEM",
	"CMAKE_HOST_SYSTEM_NAME",
	"CMAKE_HOST_SYSTEM_PROCESSOR",
	"CMAKE_HOST_SYSTEM_VERSION",
	"CMAKE_HOST_UNIX",
	"CMAKE_HOST_WIN32",
	"CMAKE_IGNORE_PATH",
	"CMAKE_IMPORT_LIBRARY_PREFIX",
	"CMAKE_IMPORT_LIBRARY_SUFFIX",
	"CMAKE_INCLUDE_CURRENT_DIR",
	"CMAKE_INCLUDE_PATH",
	"CMAKE_INSTALL_DEFAULT_COMPONENT_NAME",
	"CMAKE_INSTALL_NAME_DIR",
	"CMAKE_INSTALL_PREFIX",
	"CMAKE_INSTALL_RPATH",
	"CMAKE_INSTALL_RPATH_USE_LINK_PATH",
	"CMAKE_INTERNAL_PLATFORM_ABI",
	"CMAKE_LIBRARY_ARCHITECTURE",
	"CMAKE_LIBRARY_ARCHITECTURE_REGEX",
	"CMAKE_LIBRARY_OUTPUT_DIRECTORY",
	"CMAKE_LIBRARY_PATH",
	"CMAKE_LIBRARY_PATH_FLAG",
	"CMAKE_LINK_DEF_FILE_FLAG",
	"CMAKE_LINK_INTERFACE_LIBRARIES",
	"CMAKE_LINK_LIBRARY_FILE_FLAG",
	"CMAKE_LINK_LIBRARY_FLAG",
	"CMAKE_LINK_LIBRARY_SUFFIX",
	"CMAKE_MACOSX_BUNDLE",
	"CMAKE_MAJOR_VERSION",
	"CMAKE_MAKE_PROGRAM",
	"CMAKE_MFC_FLAG",
	"CMAKE_MINOR_VERSION",
	"CMAKE_MODULE_PATH",
	"CMAKE_NOT_USING_CONFIG_FLAGS",
	"CMAKE_NO_BUILTIN_CHRPATH",
	"CMAKE_OBJECT_PATH_MAX",
	"CMAKE_PARENT_LIST_FILE",
	"CMAKE_PATCH_VERSION",
	"CMAKE_PDB_OUTPUT_DIRECTORY",
	"CMAKE_POSITION_INDEPENDENT_CODE",
	"CMAKE_PREFIX_PATH",
	"CMAKE_PROGRAM_PATH",
	"CMAKE_PROJECT_NAME",
	"CMAKE_RANLIB",
	"CMAKE_ROOT",
	"CMAKE_RUNTIME_OUTPUT_DIRECTORY",
	"CMAKE_SCRIPT_MODE_FILE",
	"CMAKE_SHARED_LIBRARY_PREFIX",
	"CMAKE_SHARED_LIBRARY_SUFFIX",
	"CMAKE_SHARED_MODULE_PREFIX",
	"CMAKE_SHARED_MODULE_SUFFIX",
	"CMAKE_SIZEOF_VOID_P",
	"CMAKE_SKIP_BUILD_RPATH",
	"CMAKE_SKIP_INSTALL_ALL_DEPENDENCY",
	"CMAKE_SKIP_RPATH",
	"CMAKE_SOURCE_DIR",
	"CMAKE_STANDARD_LIBRARIES",
	"CMAKE_STATIC_LIBRARY_PREFIX",
	"CMAKE_STATIC_LIBRARY_SUFFIX",
	"CMAKE_SYSTEM",
	"CMAKE_SYSTEM_IGNORE_PATH",
	"CMAKE_SYSTEM_INCLUDE_PATH",
	"CMAKE_SYSTEM_LIBRARY_PATH",
	"CMAKE_SYSTEM_NAME",
	"CMAKE_SYSTEM_PREFIX_PATH",
	"CMAKE_SYSTEM_PROCESSOR",
	"CMAKE_SYSTEM_PROGRAM_PATH",
	"CMAKE_SYSTEM_VERSION",
	"CMAKE_TRY_COMPILE_CONFIGURATION",
	"CMAKE_TWEAK_VERSION",
	"CMAKE_USER_MAKE_RULES_OVERRIDE",
	"CMAKE_USE_RELATIVE_PATHS",
	"CMAKE_USING_VC_FREE_TOOLS",
	"CMAKE_VERBOSE_MAKEFILE",
	"CMAKE_VERSION",
	"CMAKE_VS_PLATFORM_TOOLSET",
	"CMAKE_WIN32_EXECUTABLE",
	"CYGWIN",
	"EXECUTABLE_OUTPUT_PATH",
	"LIBRARY_OUTPUT_PATH",
	"MSVC",
	"MSVC10",
	"MSVC11",
	"MSVC60",
	"MSVC70",
	"MSVC71",
	"MSVC80",
	"MSVC90",
	"MSVC_IDE",
	"MSVC_VERSION",
	"PROJECT_BINARY_DIR",
	"PROJECT_NAME",
	"PROJECT_SOURCE_DIR",
	"UNIX",
	"WIN32",
	"XCODE_VERSION",
}

// languageVariableTemplates are expanded once per enabled language; %s is
// replaced by the language name, e.g. CMAKE_CXX_COMPILER.
var languageVariableTemplates = []string{
	"CMAKE_%s_ARCHIVE_APPEND",
	"CMAKE_%s_ARCHIVE_CREATE",
	"CMAKE_%s_ARCHIVE_FINISH",
	"CMAKE_%s_COMPILER",
	"CMAKE_%s_COMPILER_ABI",
	"CMAKE_%s_COMPILER_ID",
	"CMAKE_%s_COMPILER_LOADED",
	"CMAKE_%s_COMPILER_VERSION",
	"CMAKE_%s_COMPILE_OBJECT",
	"CMAKE_%s_CREATE_SHARED_LIBRARY",
	"CMAKE_%s_CREATE_SHARED_MODULE",
	"CMAKE_%s_CREATE_STATIC_LIBRARY",
	"CMAKE_%s_FLAGS",
	"CMAKE_%s_FLAGS_DEBUG",
	"CMAKE_%s_FLAGS_MINSIZEREL",
	"CMAKE_%s_FLAGS_RELEASE",
	"CMAKE_%s_FLAGS_RELWITHDEBINFO",
	"CMAKE_%s_IGNORE_EXTENSIONS",
	"CMAKE_%s_IMPLICIT_INCLUDE_DIRECTORIES",
	"CMAKE_%s_IMPLICIT_LINK_DIRECTORIES",
	"CMAKE_%s_IMPLICIT_LINK_LIBRARIES",
	"CMAKE_%s_LIBRARY_ARCHITECTURE",
	"CMAKE_%s_LINKER_PREFERENCE",
	"CMAKE_%s_LINKER_PREFERENCE_PROPAGATES",
	"CMAKE_%s_LINK_EXECUTABLE",
	"CMAKE_%s_OUTPUT_EXTENSION",
	"CMAKE_%s_PLATFORM_ID",
	"CMAKE_%s_SIZEOF_DATA_PTR",
	"CMAKE_%s_SOURCE_FILE_EXTENSIONS",
	"CMAKE_USER_MAKE_RULES_OVERRIDE_%s",
}

var standardEnvVariables = []string{
	"ALLUSERSPROFILE",
	"APPDATA",
	"COMMONPROGRAMFILES",
	"COMPUTERNAME",
	"COMSPEC",
	"HOME",
	"HOMEDRIVE",
	"HOMEPATH",
	"LANG",
	"LOCALAPPDATA",
	"LOGONSERVER",
	"PATH",
	"PATHEXT",
	"PROGRAMDATA",
	"PROGRAMFILES",
	"PROMPT",
	"PSMODULEPATH",
	"PUBLIC",
	"PWD",
	"SHELL",
	"SYSTEMDRIVE",
	"SYSTEMROOT",
	"TEMP",
	"TMP",
	"TMPDIR",
	"USER",
	"USERDATA",
	"USERDOMAIN",
	"USERNAME",
	"USERPROFILE",
	"WINDIR",
}

// StandardVariables returns the built-in CMake variables in lexical order.
func StandardVariables() []string {
	return cloneStrings(standardVariables)
}

// StandardEnvVariables returns well-known environment variable names.
func StandardEnvVariables() []string {
	return cloneStrings(standardEnvVariables)
}

// LanguageVariables expands the per-language variable templates for each
// language, e.g. "CXX" yields CMAKE_CXX_COMPILER among others.
func LanguageVariables(languages []string) []string {
	var out []string
	for _, lang := range languages {
		for _, tmpl := range languageVariableTemplates {
			out = append(out, strings.Replace(tmpl, "%s", lang, 1))
		}
	}
	return out
}

// IsStandardVariable reports whether name is a built-in CMake variable.
// The comparison ignores case.
func IsStandardVariable(name string) bool {
	return containsFold(standardVariables, name)
}

// IsStandardEnvVariable reports whether name is a well-known environment
// variable. The comparison ignores case.
func IsStandardEnvVariable(name string) bool {
	return containsFold(standardEnvVariables, name)
}

func containsFold(sorted []string, name string) bool {
	name = strings.ToUpper(name)
	i := sort.SearchStrings(sorted, name)
	return i < len(sorted) && sorted[i] == name
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
