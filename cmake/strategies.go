package cmake

import (
	"github.com/dhamidi/cmakels/cmake/registry"
	"golang.org/x/exp/maps"
)

// strategy builds the candidates for an argument of command id. prior is
// nil when the request was triggered by the opening parenthesis and holds
// the preceding arguments when it was triggered by whitespace. A nil result
// means there is no contextual list.
type strategy func(id registry.CommandID, src *Source, prior []string) *Declarations

var (
	parenStrategies = map[registry.CommandID]strategy{
		registry.Include:                  includeDeclarations,
		registry.FindPackage:              packageDeclarations,
		registry.AddSubdirectory:          subdirectoryDeclarations,
		registry.EnableLanguage:           languageDeclarations,
		registry.AddDependencies:          targetDeclarations,
		registry.TargetLinkLibraries:      targetDeclarations,
		registry.TargetIncludeDirectories: targetDeclarations,
		registry.TargetCompileDefinitions: targetDeclarations,
		registry.TargetCompileOptions:     targetDeclarations,
		registry.TargetSources:            targetDeclarations,
		registry.TargetCompileFeatures:    targetDeclarations,
		registry.TargetLinkOptions:        targetDeclarations,
		registry.TargetLinkDirectories:    targetDeclarations,
		registry.SetTargetProperties:      setXPropertyDeclarations,
		registry.SetSourceFilesProperties: setXPropertyDeclarations,
		registry.SetTestsProperties:       setXPropertyDeclarations,
		registry.SetDirectoryProperties:   setXPropertyDeclarations,
		registry.GetTestProperty:          getXPropertyDeclarations,
	}

	wsStrategies = map[registry.CommandID]strategy{
		registry.AddExecutable:            sourceDeclarations,
		registry.AddLibrary:               sourceDeclarations,
		registry.AddDependencies:          targetDeclarations,
		registry.TargetLinkLibraries:      targetDeclarations,
		registry.GetTargetProperty:        getXPropertyDeclarations,
		registry.GetSourceFileProperty:    getXPropertyDeclarations,
		registry.GetTestProperty:          getXPropertyDeclarations,
		registry.GetDirectoryProperty:     getXPropertyDeclarations,
		registry.GetCMakeProperty:         getXPropertyDeclarations,
		registry.SetTargetProperties:      setXPropertyDeclarations,
		registry.SetSourceFilesProperties: setXPropertyDeclarations,
		registry.SetTestsProperties:       setXPropertyDeclarations,
		registry.SetDirectoryProperties:   setXPropertyDeclarations,
		registry.GetProperty:              getPropertyDeclarations,
		registry.SetProperty:              setPropertyDeclarations,
	}

	// objectStrategies list the objects whose properties a command accesses.
	objectStrategies = map[registry.PropertyType]strategy{
		registry.PropertyDirectory: subdirectoryDeclarations,
		registry.PropertySource:    sourceDeclarations,
		registry.PropertyTarget:    targetDeclarations,
		registry.PropertyTest:      testDeclarations,
		registry.PropertyCache:     cacheObjectDeclarations,
	}
)

func init() {
	for _, id := range registry.SubcommandsWithCommands() {
		parenStrategies[id] = subcommandDeclarations
	}
}

// CreateDeclarations selects the strategy for command id. A nil prior picks
// the table for requests triggered by the opening parenthesis.
func CreateDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	table := wsStrategies
	if prior == nil {
		table = parenStrategies
	}
	fn, ok := table[id]
	if !ok {
		return nil
	}
	return fn(id, src, prior)
}

// ParenTriggers returns the commands with a strategy after "(".
func ParenTriggers() []registry.CommandID {
	return triggers(parenStrategies)
}

// WhiteSpaceTriggers returns the commands with a strategy after whitespace.
func WhiteSpaceTriggers() []registry.CommandID {
	return triggers(wsStrategies)
}

func triggers(table map[registry.CommandID]strategy) []registry.CommandID {
	out := maps.Keys(table)
	sortCommands(out)
	return out
}

func includeDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := NewDeclarations()
	d.AddItems(IncludeFiles(src), ItemReference)
	return d
}

func packageDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := NewDeclarations()
	d.AddItems(Packages(src), ItemReference)
	return d
}

func subdirectoryDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := NewDeclarations()
	d.AddItems(Subdirectories(src.sourceDir(), src.Options.RequireCMakeLists), ItemReference)
	return d
}

func languageDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := NewDeclarations()
	d.AddItems(Languages(src.Options), ItemReference)
	return d
}

func targetDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := newUnsortedDeclarations()
	d.AddItems(ParseForTargetNames(src.Lines, false), ItemTarget)
	d.ExcludeItems(prior)
	return d
}

func testDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := newUnsortedDeclarations()
	d.AddItems(ParseForTargetNames(src.Lines, true), ItemTarget)
	d.ExcludeItems(prior)
	return d
}

func cacheObjectDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := NewDeclarations()
	d.AddItems(cacheVariablesIn(src.Lines), ItemVariable)
	if src.Symbols != nil {
		d.AddItems(src.Symbols.CacheVariables(), ItemVariable)
	}
	d.ExcludeItems(prior)
	return d
}

func subcommandDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	subs := registry.Subcommands(id)
	if subs == nil {
		return nil
	}
	d := NewDeclarations()
	d.AddItems(subs, ItemCommand)
	return d
}

// sourceDeclarations lists the files next to the buffer plus the command's
// keyword flags. For add_executable and add_library files already listed
// are left out; the first argument names the target and never excludes.
func sourceDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	d := NewDeclarations()
	d.AddItems(SourceFiles(src.sourceDir()), ItemReference)
	d.AddItems(registry.CommandKeywords(id), ItemCommand)
	if (id == registry.AddExecutable || id == registry.AddLibrary) && len(prior) > 1 {
		d.ExcludeItems(prior[1:])
	}
	return d
}

func propertyDeclarations(t registry.PropertyType) *Declarations {
	d := NewDeclarations()
	d.AddItems(registry.PropertiesOfType(t), ItemProperty)
	return d
}

func getXPropertyDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	n := len(prior)
	pc, ok := registry.LookupPropertyCommand(id)
	if !ok {
		return nil
	}
	switch {
	case n == pc.PropertySlot:
		d := propertyDeclarations(pc.Type)
		if id == registry.GetDirectoryProperty {
			d.AddItem("DIRECTORY", ItemCommand)
		}
		return d
	case n == pc.ObjectSlot:
		if fn, ok := objectStrategies[pc.Type]; ok {
			return fn(id, src, prior)
		}
	case id == registry.GetDirectoryProperty && n == 2 && prior[1] == "DIRECTORY":
		return subdirectoryDeclarations(id, src, prior)
	case id == registry.GetDirectoryProperty && n == 3 && prior[1] == "DIRECTORY":
		return propertyDeclarations(pc.Type)
	}
	return nil
}

func indexOf(args []string, want string) int {
	for i, a := range args {
		if a == want {
			return i
		}
	}
	return -1
}

// setXPropertyDeclarations handles set_*_properties(objects... PROPERTIES
// name value ...): objects before PROPERTIES, property names at even
// offsets after it, and nothing for values.
func setXPropertyDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	t := registry.PropertyTypeFromCommand(id)
	if i := indexOf(prior, "PROPERTIES"); i >= 0 {
		if (len(prior)-i)%2 == 1 {
			return propertyDeclarations(t)
		}
		return nil
	}

	var d *Declarations
	if fn, ok := objectStrategies[t]; ok && registry.ObjectSlot(id) >= 0 {
		d = fn(id, src, prior)
	} else {
		d = NewDeclarations()
	}
	if len(prior) > 0 || id == registry.SetSourceFilesProperties || id == registry.SetDirectoryProperties {
		d.AddItem("PROPERTIES", ItemCommand)
	}
	return d
}

// getPropertyDeclarations handles
// get_property(var KIND [object] PROPERTY name ...).
func getPropertyDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	switch n := len(prior); {
	case n == 1:
		d := NewDeclarations()
		d.AddItems(registry.PropertyTypeKeywords(), ItemCommand)
		return d
	case n > 2 && prior[n-1] == "PROPERTY":
		return propertyDeclarations(registry.PropertyTypeFromKeyword(prior[1]))
	case n == 2:
		t := registry.PropertyTypeFromKeyword(prior[1])
		d := NewDeclarations()
		if fn, ok := objectStrategies[t]; ok {
			d = fn(id, src, prior)
		}
		if !registry.IsObjectRequired(t) {
			d.AddItem("PROPERTY", ItemCommand)
		}
		return d
	case n == 3:
		d := NewDeclarations()
		d.AddItem("PROPERTY", ItemCommand)
		return d
	}
	return nil
}

// setPropertyDeclarations handles
// set_property(KIND [objects...] [APPEND] [APPEND_STRING] PROPERTY name
// values...). The kind itself is offered as a subcommand after "(".
func setPropertyDeclarations(id registry.CommandID, src *Source, prior []string) *Declarations {
	n := len(prior)
	if n == 0 {
		return nil
	}
	t := registry.PropertyTypeFromKeyword(prior[0])
	if t == registry.PropertyUnspecified {
		return nil
	}
	if prior[n-1] == "PROPERTY" {
		return propertyDeclarations(t)
	}
	if indexOf(prior, "PROPERTY") >= 0 {
		return nil
	}
	d := NewDeclarations()
	if fn, ok := objectStrategies[t]; ok {
		d = fn(id, src, prior[1:])
	}
	if n > 1 || !registry.IsObjectRequired(t) {
		d.AddItems([]string{"APPEND", "APPEND_STRING", "PROPERTY"}, ItemCommand)
		d.ExcludeItems(prior[1:])
	}
	return d
}
