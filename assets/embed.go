// Package assets bundles the default themes into the binary.
package assets

import "embed"

//go:embed themes
var FS embed.FS
