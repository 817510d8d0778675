package sqlite

import (
	"errors"
	"strings"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Constraint violations are reported by the engine, not computed here. These
// helpers only classify an error returned by this package; they never
// replace it.

// IsConstraintViolation reports whether err is any SQLite constraint failure
func IsConstraintViolation(err error) bool {
	var se *sqlitedrv.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// IsForeignKeyViolation reports whether err is a foreign key failure
func IsForeignKeyViolation(err error) bool {
	return isConstraint(err, "FOREIGN KEY constraint failed", sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY)
}

// IsUniqueViolation reports whether err is a unique or primary key failure
func IsUniqueViolation(err error) bool {
	return isConstraint(err, "UNIQUE constraint failed",
		sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}

// IsNotNullViolation reports whether err is a required-column failure
func IsNotNullViolation(err error) bool {
	return isConstraint(err, "NOT NULL constraint failed", sqlite3.SQLITE_CONSTRAINT_NOTNULL)
}

// isConstraint matches the extended result code, falling back to the
// engine's message for any constraint code. RESTRICT actions report
// SQLITE_CONSTRAINT_TRIGGER with a foreign key message.
func isConstraint(err error, msg string, codes ...int) bool {
	var se *sqlitedrv.Error
	if !errors.As(err, &se) {
		return false
	}
	for _, code := range codes {
		if se.Code() == code {
			return true
		}
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), msg)
}
