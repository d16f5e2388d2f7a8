package blasym

import (
	"fmt"
	"runtime/debug"
)

const root = "github.com/LynnColeArt/blasym"

// Version returns the version of blasym and its checksum. The returned
// values are only valid in binaries built with module support.
//
// The exact version format returned by Version may change in future.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == root {
			if m.Replace != nil {
				switch {
				case m.Replace.Version != "":
					return fmt.Sprintf("%s (replaced by %s)", m.Version, m.Replace.Path), m.Replace.Sum
				case m.Replace.Path != "":
					return fmt.Sprintf("%s (replaced by %s)", m.Version, m.Replace.Path), ""
				default:
					return m.Version, m.Sum
				}
			}
			return m.Version, m.Sum
		}
	}
	return "", ""
}
