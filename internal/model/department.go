package model

// Department is a read-only organisational unit.
type Department struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Code    string `json:"code" db:"code"`
	DelFlag string `json:"del_flag" db:"del_flag"`
}

// DepartmentsResponse wraps the department list as GET /departments returns it.
type DepartmentsResponse struct {
	Departments []Department `json:"departments"`
}
