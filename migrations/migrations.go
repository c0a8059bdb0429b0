// Package migrations embeds the goose SQL migrations for every schema.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.sql
var files embed.FS

// Catalog holds the catalog schema migrations rooted at their directory.
var Catalog = mustSub(files, "catalog")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
