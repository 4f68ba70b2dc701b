package model

import (
	"strings"
	"time"
)

// Section is a soft-deletable organisational section.
//
// UpdatedAt stays nil until the first update; CreatedAt never changes.
type Section struct {
	ID        int64      `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	Name      string     `json:"name" db:"name"`
	DelFlag   string     `json:"del_flag" db:"del_flag"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// SectionInput carries the mutable fields of a section.
type SectionInput struct {
	Code string
	Name string
}

// CreateSectionRequest is the body of POST /create/section.
type CreateSectionRequest struct {
	Code string `json:"code" validate:"required,max=50"`
	Name string `json:"name" validate:"required,max=255"`
}

func (r *CreateSectionRequest) Validate() error {
	r.Code, r.Name = strings.TrimSpace(r.Code), strings.TrimSpace(r.Name)
	return validate.Struct(r)
}

func (r *CreateSectionRequest) Input() SectionInput {
	return SectionInput{Code: r.Code, Name: r.Name}
}

// UpdateSectionRequest is the path and body of PUT /update/section/:id.
type UpdateSectionRequest struct {
	ID   int64  `param:"id" json:"-" validate:"required,min=1"`
	Code string `json:"code" validate:"required,max=50"`
	Name string `json:"name" validate:"required,max=255"`
}

func (r *UpdateSectionRequest) Validate() error {
	r.Code, r.Name = strings.TrimSpace(r.Code), strings.TrimSpace(r.Name)
	return validate.Struct(r)
}

func (r *UpdateSectionRequest) Input() SectionInput {
	return SectionInput{Code: r.Code, Name: r.Name}
}
