package teletext

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via `-ldflags "-X 'github.com/bldsoft/go-teletext/src.TELETEXT_VERSION=X'"`
var TELETEXT_VERSION string

// Version describes this build: the release string supplied at link
// time plus whatever VCS details the Go toolchain recorded.
func Version() string {
	var version = TELETEXT_VERSION
	if version == "" {
		version = "unreleased"
	}

	var revision = "unknown"
	var when = "unknown"
	var dirty bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, bs := range bi.Settings {
			switch bs.Key {
			case "vcs.revision":
				revision = bs.Value
			case "vcs.modified":
				dirty = bs.Value == "true"
			case "vcs.time":
				when = bs.Value
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "go-teletext %s (revision %s", version, revision)
	if dirty {
		b.WriteString("-dirty")
	}
	fmt.Fprintf(&b, ", built %s)", when)
	return b.String()
}
