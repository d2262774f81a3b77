package probe

// Tables carries the ranked candidate member names the probes cascade
// over. The defaults mirror the accessor names the supported host
// releases are known to use, newest first; deployments facing a renamed
// host can extend them through configuration without touching the
// resolution algorithm.
type Tables struct {
	// WindowAccessors are zero-argument methods on the client object that
	// return the window-like object.
	WindowAccessors []string
	// HandleMethods are zero-argument methods on the window object
	// returning the native handle.
	HandleMethods []string
	// HandleFields are fields on the window object holding the native
	// handle, tried only after every method candidate failed.
	HandleFields []string
	// VersionTypes is the ordered table of known version-constant holder
	// types, most specific first.
	VersionTypes []VersionType
}

// VersionType describes one known version-constant holder: its
// fully-qualified name plus the accessor candidates to read a version
// string out of it.
type VersionType struct {
	// Name is the fully-qualified host type name used for registry lookup.
	Name string
	// VersionObject are accessors returning the version descriptor object
	// (or, on legacy hosts, the version string directly).
	VersionObject []string
	// NameAccessors are accessors on the version descriptor returning its
	// display name.
	NameAccessors []string
	// NameFields are text fields on the holder itself, the legacy
	// fallback when no version descriptor is obtainable.
	NameFields []string
}

// DefaultTables returns the compiled-in candidate tables covering every
// host release the probes know about.
func DefaultTables() Tables {
	return Tables{
		WindowAccessors: []string{"GetWindow", "Method22683"},
		HandleMethods:   []string{"GetHandle", "Method4490"},
		HandleFields:    []string{"handle", "Field16784"},
		VersionTypes: []VersionType{
			{
				Name:          "net.minecraft.SharedConstants",
				VersionObject: []string{"GetGameVersion", "Method16673"},
				NameAccessors: []string{"GetName", "Method47563", "Method16680", "GetID", "GetVersionString"},
				NameFields:    []string{"VersionName", "Field634"},
			},
			{
				Name:          "net.minecraft.util.SharedConstants",
				VersionObject: []string{"GetGameVersion", "Method16673"},
				NameAccessors: []string{"GetName", "Method16680", "GetID", "GetVersionString"},
				NameFields:    []string{"VersionName", "Field634"},
			},
			{
				Name:          "net.minecraft.class_155",
				VersionObject: []string{"Method16673"},
				NameAccessors: []string{"Method47563", "Method16680"},
				NameFields:    []string{"Field634"},
			},
		},
	}
}
