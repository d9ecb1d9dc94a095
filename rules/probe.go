package rules

import (
	"github.com/ghetzel/go-stockutil/sliceutil"
)

// Style property names whose presence means the host already aligns scrolling
// natively, standard and vendor-prefixed alike.
var nativeSnapProperties = []string{
	`scrollSnapAlign`,
	`webkitScrollSnapAlign`,
	`msScrollSnapAlign`,
}

// Probe answers whether the host supports scroll snapping natively. When it
// does, the engine must no-op entirely.
type Probe interface {
	HasNativeSupport() bool
}

// StyleProbe detects native support from the set of style property names the
// host exposes.
type StyleProbe struct {
	Properties []string
}

func (self *StyleProbe) HasNativeSupport() bool {
	for _, property := range nativeSnapProperties {
		if sliceutil.ContainsString(self.Properties, property) {
			return true
		}
	}

	return false
}
