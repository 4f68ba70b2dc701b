package model

// Building is a building with the names of its active floors, ordered by
// floor id.
type Building struct {
	ID     int64    `json:"id" db:"id"`
	Name   string   `json:"name" db:"name"`
	Floors []string `json:"floors" db:"floors"`
}

// BuildingsResponse wraps the building list as GET /buildings returns it.
type BuildingsResponse struct {
	Buildings []Building `json:"buildings"`
}
