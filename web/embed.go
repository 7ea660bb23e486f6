package web

import "embed"

// StaticFS embeds the single-page frontend bundle.
//
//go:embed static
var StaticFS embed.FS
