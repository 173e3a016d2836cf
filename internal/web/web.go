// Package web holds the embedded map page served at the root route.
package web

import "embed"

//go:embed static
var Static embed.FS
