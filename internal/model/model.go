// Package model holds the entity shapes exchanged with clients and the
// database, and the request payloads accepted by the handlers.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Soft-delete sentinels stored in every del_flag column. A record is
// active iff its flag equals ActiveFlag.
const (
	ActiveFlag  = "N"
	DeletedFlag = "Y"
)

var validate = newValidator()

// newValidator reports fields by their wire names: the json key, or the
// path parameter name for fields that never appear in a body.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
		if name := f.Tag.Get("param"); name != "" {
			return name
		}
		return strings.ToLower(f.Name)
	})
	return v
}

// MessageResponse is the body of informational responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// NoParams is the payload of routes that take no input.
type NoParams struct{}

func (NoParams) Validate() error {
	return nil
}

// IDParam binds the :id path segment.
type IDParam struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (p *IDParam) Validate() error {
	return validate.Struct(p)
}
