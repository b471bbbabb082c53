package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

func pqCode(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

// translateWriteError maps constraint violations to domain errors. Errors it
// does not recognise are wrapped with op and returned as internal failures.
func translateWriteError(op string, err error) error {
	pqErr, ok := pqCode(err)
	if !ok {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch pqErr.Code {
	case codeUniqueViolation:
		if pqErr.Constraint == "customers_email_key" {
			return domain.NewConflictError("email already exists", err)
		}
		return domain.NewConflictError("record already exists", err)
	case codeNotNullViolation:
		return domain.NewValidationError(fmt.Sprintf("required field %s is missing", pqErr.Column), err)
	case codeCheckViolation:
		if pqErr.Constraint == "service_records_completion_check" {
			return domain.NewValidationError("completion date cannot be earlier than the service date", err)
		}
		return domain.NewValidationError("value does not meet required conditions", err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isForeignKeyViolation(err error) bool {
	pqErr, ok := pqCode(err)
	return ok && pqErr.Code == codeForeignKeyViolation
}
