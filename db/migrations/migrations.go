package migrations

import "embed"

// FS holds the SQL migration files embedded from this directory. They are
// applied through golang-migrate's iofs source driver at startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1
