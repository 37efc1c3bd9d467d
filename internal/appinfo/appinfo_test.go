package appinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		version string
		bi      *debug.BuildInfo
		want    string
		agent   string
	}{
		{"no build info", "dev", nil, "dev linux", "Filmoria/dev (linux)"},
		{"ldflags win", "1.2.0", &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, "1.2.0 linux", "Filmoria/1.2.0 (linux)"},
		{"module version", "dev", &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, "v0.9.0 linux", "Filmoria/v0.9.0 (linux)"},
		{"devel build", "dev", &debug.BuildInfo{
			Main:     debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
		}, "dev (0123456) linux", "Filmoria/dev (linux)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := build(tt.version, tt.bi, "linux")
			assert.Equal(t, tt.want, info.String())
			assert.Equal(t, tt.agent, info.UserAgent)
		})
	}
}
