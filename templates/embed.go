// Package templates carries the embedded HTML template set for the
// storefront pages.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
