package version

import (
	"runtime/debug"
	"sync"
)

// Get returns the module version recorded in the build info, or
// "development" for builds without one.
var Get = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "development"
})
