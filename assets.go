package logogrid

import "embed"

// EmbeddedPages holds the page template and stylesheet.
//
//go:embed web/index.html web/style.css
var EmbeddedPages embed.FS
