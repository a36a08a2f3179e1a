//go:build !cgo_sqlite

package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const sqliteDriver = "sqlite"

func openDB(dataSource string) (*sql.DB, error) {
	return sql.Open(sqliteDriver, dataSource)
}
