package errors

import (
	stderrs "errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteCode returns the extended result code of a modernc sqlite error
func sqliteCode(err error) (int, bool) {
	var se *sqlite.Error
	if err == nil || !stderrs.As(err, &se) {
		return 0, false
	}
	return se.Code(), true
}

func isSQLiteDuplicate(err error) bool {
	code, ok := sqliteCode(err)
	if !ok {
		return false
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(err.Error(), "UNIQUE constraint failed")
	}
	return false
}

func isSQLiteBusy(err error) bool {
	code, ok := sqliteCode(err)
	if !ok {
		return false
	}
	// low byte is the primary result code
	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}
