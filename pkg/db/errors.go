package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether the provided error references a Postgres
// unique violation. When constraintName is provided, the helper additionally
// requires that constraint to be the one violated.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}

	if code, constraint, ok := pgErrorDetails(err); ok {
		if code != uniqueViolationCode {
			return false
		}
		if constraintName == "" {
			return true
		}
		return constraint == constraintName
	}

	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value")
}

// UniqueConstraint returns the name of the violated unique constraint, or the
// empty string when the error is not a unique violation. Drivers that do not
// expose structured errors fall back to message scanning against the provided
// candidates.
func UniqueConstraint(err error, candidates ...string) string {
	if err == nil {
		return ""
	}

	if code, constraint, ok := pgErrorDetails(err); ok {
		if code == uniqueViolationCode {
			return constraint
		}
		return ""
	}

	msg := err.Error()
	if !strings.Contains(msg, "duplicate key value") {
		return ""
	}
	for _, candidate := range candidates {
		if strings.Contains(msg, candidate) {
			return candidate
		}
	}
	return ""
}

func pgErrorDetails(err error) (code, constraint string, ok bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}
