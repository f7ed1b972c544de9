// Package schemas встраивает JSON-схемы сущностей и событий платформы.
package schemas

import "embed"

//go:embed entities events
var SchemasFS embed.FS
