package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/org-directory/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	uniqueConstraintPattern     = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	foreignKeyConstraintPattern = regexp.MustCompile(`^[^_]+_(.+)_fkey$`)
)

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds a machine readable code such as SECTION_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singular(tableName))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		column := sqlErr.ColumnName
		if column == "" {
			column = extractColumnForForeignKey(sqlErr.ConstraintName)
		}
		return fmt.Sprintf("The referenced %s does not exist", getEntityName(sqlErr.TableName, column))

	case UniqueViolation:
		entityName := getEntityName(sqlErr.TableName, "")
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			return fmt.Sprintf("A %s with this %s already exists", entityName, humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers the entity a column or table refers to.
//
//	"section_id"   -> "Section"
//	"code_section" -> "Section"
//	"divisions"    -> "Division"
func getEntityName(tableName, columnName string) string {
	column := strings.ToLower(columnName)
	switch {
	case strings.HasSuffix(column, "_id"):
		return humanizeText(strings.TrimSuffix(column, "_id"))
	case strings.HasPrefix(column, "code_"):
		return humanizeText(strings.TrimPrefix(column, "code_"))
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

func singular(name string) string {
	if len(name) > 1 && (strings.HasSuffix(name, "s") || strings.HasSuffix(name, "S")) {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from constraint names
// following "unique_<table>_<column>" or "<table>_<column>_key".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueConstraintPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// extractColumnForForeignKey infers the column from "<table>_<column>_fkey".
func extractColumnForForeignKey(constraintName string) string {
	if matches := foreignKeyConstraintPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - constraint violations: 400 with a client-facing message
//   - no rows: 404
//   - anything else: 500, with err kept as the cause for logging
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil).WithCause(err)

		case UniqueViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil).WithCause(err)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors).WithCause(err)

		case CheckViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil).WithCause(err)

		default:
			return errs.NewInternalServerError().WithCause(err)
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil).WithCause(err)
	}

	return errs.NewInternalServerError().WithCause(err)
}
