package migrations

import "embed"

// FS embeds the SQL migrations in this directory. db.Migrate serves
// them to golang-migrate through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate brings the database up to.
const Version = 1
