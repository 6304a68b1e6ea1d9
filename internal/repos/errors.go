package repos

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"warehouse/internal/domain"
)

// classify maps sqlite constraint failures onto domain error kinds and leaves
// every other error untouched. ref names the foreign row for FK failures.
func classify(err error, ref string) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	code := se.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY || strings.Contains(se.Error(), "FOREIGN KEY") {
		return fmt.Errorf("%w: %s", domain.ErrReferenceNotFound, ref)
	}
	return fmt.Errorf("%w: %s", domain.ErrDuplicateOrInvalid, constraintDetail(se.Error()))
}

// constraintDetail trims the driver message down to the failing constraint,
// e.g. "UNIQUE constraint failed: suppliers.email".
func constraintDetail(msg string) string {
	if i := strings.LastIndex(msg, "constraint failed"); i >= 0 {
		msg = msg[strings.LastIndex(msg[:i], ":")+1:]
	}
	if j := strings.LastIndex(msg, " ("); j > 0 && strings.HasSuffix(msg, ")") {
		msg = msg[:j]
	}
	return strings.TrimSpace(msg)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrDuplicateOrInvalid, fmt.Sprintf(format, args...))
}
