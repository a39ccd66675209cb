// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping lispy.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lispy
var script string //nolint:gochecknoglobals

// Script returns the prelude evaluated into every new runtime.
func Script() string {
	return script
}
