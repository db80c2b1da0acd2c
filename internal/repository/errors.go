package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers for constraint violations.
const (
	mysqlErrDuplicateEntry     = 1062
	mysqlErrForeignKeyNoParent = 1452
)

// ConstraintViolation is a referential-integrity or uniqueness failure
// surfaced from the store, classified by driver error number rather
// than by searching the full error string.
type ConstraintViolation struct {
	// Column is the best-effort column name extracted from the
	// constraint name in the driver message ("seller_id", "category_id",
	// ...). Empty when it cannot be determined.
	Column    string
	Duplicate bool
	err       error
}

func (e *ConstraintViolation) Error() string {
	return e.err.Error()
}

func (e *ConstraintViolation) Unwrap() error {
	return e.err
}

// AsConstraintViolation classifies err if it is a MySQL constraint
// failure. MySQL exposes the failing constraint only inside the message
// text, so the column is recovered from there; the classification
// itself never depends on message wording.
func AsConstraintViolation(err error) (*ConstraintViolation, bool) {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return nil, false
	}
	switch myErr.Number {
	case mysqlErrForeignKeyNoParent:
		return &ConstraintViolation{Column: fkColumn(myErr.Message), err: err}, true
	case mysqlErrDuplicateEntry:
		return &ConstraintViolation{Duplicate: true, err: err}, true
	}
	return nil, false
}

// fkColumn pulls the referencing column out of a 1452 message, which
// has the form: ... FOREIGN KEY (`seller_id`) REFERENCES `users` (`id`) ...
func fkColumn(msg string) string {
	const marker = "FOREIGN KEY (`"
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	j := strings.Index(rest, "`")
	if j < 0 {
		return ""
	}
	return rest[:j]
}
