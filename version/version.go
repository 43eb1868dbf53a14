package version

import (
	"runtime/debug"
	"sync"
)

// ModulePath is looked up in the binary's build info to find the SDK version.
const ModulePath = "github.com/kbukum/paysdk"

// Version overrides the detected version when set at build time:
//
//	go build -ldflags "-X github.com/kbukum/paysdk/version.Version=v1.2.0"
var Version = ""

// Info describes the SDK build linked into the running binary.
type Info struct {
	Version   string `json:"version"`
	Sum       string `json:"sum,omitempty"`
	GoVersion string `json:"go_version"`
}

var (
	once   sync.Once
	cached Info
)

// Get returns the SDK build information. It is computed once.
func Get() Info {
	once.Do(func() { cached = resolve(Version, debug.ReadBuildInfo) })
	return cached
}

// UserAgent returns the User-Agent header sent by the SDK, e.g. "paysdk/v1.2.0".
func UserAgent() string {
	return "paysdk/" + Get().Version
}

func resolve(override string, read func() (*debug.BuildInfo, bool)) Info {
	info := Info{Version: "dev"}
	if bi, ok := read(); ok {
		info.GoVersion = bi.GoVersion
		if mod := findModule(bi); mod != nil && mod.Version != "" && mod.Version != "(devel)" {
			info.Version = mod.Version
			info.Sum = mod.Sum
		}
	}
	if override != "" {
		info.Version = override
	}
	return info
}

func findModule(bi *debug.BuildInfo) *debug.Module {
	if bi.Main.Path == ModulePath {
		return &bi.Main
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace
		}
		return dep
	}
	return nil
}
