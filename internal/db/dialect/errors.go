package dialect

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	sqlite3 "modernc.org/sqlite"
)

// SQLite extended result codes for unique-constraint failures.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// IsUniqueViolation reports whether err is a unique-constraint rejection
// from either backend. Callers match on the constraint's column name via the
// error text when they need to know which constraint fired.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqErr *sqlite3.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqliteConstraintPrimaryKey || code == sqliteConstraintUnique
	}

	// Driver-agnostic fallback for wrapped errors that lost their type.
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value")
}
