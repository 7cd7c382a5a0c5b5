package registry

var commandKeywords = map[CommandID][]string{
	AddExecutable: {
		"EXCLUDE_FROM_ALL",
		"MACOSX_BUNDLE",
		"WIN32",
	},
	AddLibrary: {
		"EXCLUDE_FROM_ALL",
		"IMPORTED",
		"INTERFACE",
		"MODULE",
		"OBJECT",
		"SHARED",
		"STATIC",
	},
}

// CommandKeywords returns the flag keywords a command accepts among its
// source list, e.g. WIN32 for add_executable.
func CommandKeywords(id CommandID) []string {
	return cloneStrings(commandKeywords[id])
}

var languages = []string{
	"ASM",
	"ASM-ATT",
	"ASM_MASM",
	"ASM_NASM",
	"C",
	"CSharp",
	"CUDA",
	"CXX",
	"Fortran",
	"HIP",
	"ISPC",
	"Java",
	"OBJC",
	"OBJCXX",
	"RC",
	"Swift",
}

// Languages returns the language names accepted by enable_language and
// project.
func Languages() []string {
	return cloneStrings(languages)
}
