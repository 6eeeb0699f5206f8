package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateColumnsDDL creates the column clause list of a CREATE TABLE
// statement from `db` and `ddl` struct tags. Table-level constraints
// are appended after the columns.
func generateColumnsDDL(model any, constraints ...string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var clauses []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			clauses = append(clauses, fmt.Sprintf("%s %s", dbTag, ddlTag))
		}
	}

	clauses = append(clauses, constraints...)

	return strings.Join(clauses, ", ")
}

// Species DDL methods

func (s Species) ColumnsDDL() string {
	return generateColumnsDDL(s)
}

func (s Species) TableName() string {
	return "species"
}

// Region DDL methods

func (r Region) ColumnsDDL() string {
	return generateColumnsDDL(r)
}

func (r Region) TableName() string {
	return "regions"
}

// System DDL methods

func (s System) ColumnsDDL() string {
	return generateColumnsDDL(s)
}

func (s System) TableName() string {
	return "systems"
}

// Body DDL methods

func (b Body) ColumnsDDL() string {
	return generateColumnsDDL(b, "UNIQUE (name, system_id)")
}

func (b Body) TableName() string {
	return "bodies"
}
