// Package appinfo identifies this build to the catalog API and on the command line.
package appinfo

import (
	"runtime"
	"runtime/debug"
)

const Product = "Filmoria"

// Version is set with -ldflags "-X github.com/Waddenn/filmoria/internal/appinfo.Version=...".
var Version = "dev"

type Info struct {
	Product   string
	Version   string
	Revision  string
	Platform  string
	UserAgent string
}

func Default() Info {
	bi, _ := debug.ReadBuildInfo()
	return build(Version, bi, runtime.GOOS)
}

// build falls back to the module version that go install records, and picks
// up the VCS revision when the binary was built from a checkout.
func build(version string, bi *debug.BuildInfo, goos string) Info {
	info := Info{Product: Product, Version: version, Platform: goos}
	if bi != nil {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				info.Revision = s.Value[:7]
			}
		}
	}
	info.UserAgent = info.Product + "/" + info.Version + " (" + info.Platform + ")"
	return info
}

// String is the version line printed by the CLI.
func (i Info) String() string {
	s := i.Version
	if i.Revision != "" {
		s += " (" + i.Revision + ")"
	}
	return s + " " + i.Platform
}
