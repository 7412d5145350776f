package appfs

import "embed"

// FS holds the embedded database migrations.
//go:embed migrations
var FS embed.FS
