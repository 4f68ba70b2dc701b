package model

import (
	"strings"
	"time"
)

// Division belongs to the section whose code equals CodeSection. The link
// is enforced by the database, not here.
type Division struct {
	ID          int64      `json:"id" db:"id"`
	Code        string     `json:"code" db:"code"`
	Name        string     `json:"name" db:"name"`
	CodeSection string     `json:"code_section" db:"code_section"`
	DelFlag     string     `json:"del_flag" db:"del_flag"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// DivisionDetail is a division joined to its section.
type DivisionDetail struct {
	Division
	SectionID   int64  `json:"section_id" db:"section_id"`
	SectionName string `json:"section_name" db:"section_name"`
}

// DivisionInput carries the mutable fields of a division.
type DivisionInput struct {
	Code        string
	Name        string
	CodeSection string
}

// CreateDivisionRequest is the body of POST /create/division.
type CreateDivisionRequest struct {
	Code        string `json:"code" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=255"`
	CodeSection string `json:"code_section" validate:"required,max=50"`
}

func (r *CreateDivisionRequest) Validate() error {
	r.Code, r.Name, r.CodeSection = strings.TrimSpace(r.Code), strings.TrimSpace(r.Name), strings.TrimSpace(r.CodeSection)
	return validate.Struct(r)
}

func (r *CreateDivisionRequest) Input() DivisionInput {
	return DivisionInput{Code: r.Code, Name: r.Name, CodeSection: r.CodeSection}
}

// UpdateDivisionRequest is the path and body of PUT /update/division/:id.
type UpdateDivisionRequest struct {
	ID          int64  `param:"id" json:"-" validate:"required,min=1"`
	Code        string `json:"code" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=255"`
	CodeSection string `json:"code_section" validate:"required,max=50"`
}

func (r *UpdateDivisionRequest) Validate() error {
	r.Code, r.Name, r.CodeSection = strings.TrimSpace(r.Code), strings.TrimSpace(r.Name), strings.TrimSpace(r.CodeSection)
	return validate.Struct(r)
}

func (r *UpdateDivisionRequest) Input() DivisionInput {
	return DivisionInput{Code: r.Code, Name: r.Name, CodeSection: r.CodeSection}
}
