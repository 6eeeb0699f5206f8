// Package schema provides database schema models for codexdb.
// The Report model describes the denormalized flat table written by the
// load phase; the remaining models describe the reference tables created
// by the normalize phase.
package schema

import (
	"database/sql"
)

// ReportsTable is the name of the flat table holding one row per
// accepted codex discovery record.
const ReportsTable = "codex_reports"

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// ColumnsDDL returns the comma-joined column and constraint clauses
	// for this model's CREATE TABLE statement.
	ColumnsDDL() string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// Report is the flat, denormalized form of a codex discovery record.
// Only records whose hud_category equals the biological category are
// persisted. The normalize phase adds the three reference columns and
// drops the denormalized ones, so a Report read back after
// normalization no longer matches this shape.
type Report struct {
	// ID is a surrogate key; the flat table has no natural key and
	// duplicate discovery records are allowed.
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	// EntryID is the numeric codex entry identifier.
	EntryID sql.NullInt64 `gorm:"column:entry_id;type:bigint"`

	// Name is the display name of the discovery.
	Name sql.NullString `gorm:"column:name;type:varchar(255)"`

	// Category and SubCategory describe the codex classification.
	Category    sql.NullString `gorm:"column:category;type:varchar(255)"`
	SubCategory sql.NullString `gorm:"column:sub_category;type:varchar(255)"`

	// HudCategory is the filter predicate field; every persisted row
	// carries the biological category value.
	HudCategory sql.NullString `gorm:"column:hud_category;type:varchar(50)"`

	// EnglishName is the species english name.
	EnglishName sql.NullString `gorm:"column:english_name;type:varchar(255)"`

	// System is the star system name; X, Y, Z are its galactic
	// coordinates.
	System sql.NullString  `gorm:"column:system;type:varchar(255)"`
	X      sql.NullFloat64 `gorm:"column:x;type:double precision"`
	Y      sql.NullFloat64 `gorm:"column:y;type:double precision"`
	Z      sql.NullFloat64 `gorm:"column:z;type:double precision"`

	// SystemAddress is the 64-bit system identifier.
	SystemAddress sql.NullInt64 `gorm:"column:system_address;type:bigint"`

	// Body is the celestial body name; Latitude and Longitude are the
	// geo-coordinates of the discovery on that body.
	Body      sql.NullString  `gorm:"column:body;type:varchar(255)"`
	Latitude  sql.NullFloat64 `gorm:"column:latitude;type:double precision"`
	Longitude sql.NullFloat64 `gorm:"column:longitude;type:double precision"`

	// RegionName is the galactic region; RegionNameLocalised is its
	// optional localisation variant.
	RegionName          sql.NullString `gorm:"column:region_name;type:varchar(255)"`
	RegionNameLocalised sql.NullString `gorm:"column:region_name_localised;type:varchar(255)"`

	// CmdrName identifies the reporting commander.
	CmdrName sql.NullString `gorm:"column:cmdr_name;type:varchar(255)"`

	// CreatedAt and ReportedAt are the source record timestamps.
	CreatedAt  sql.NullTime `gorm:"column:created_at;type:timestamp without time zone"`
	ReportedAt sql.NullTime `gorm:"column:reported_at;type:timestamp without time zone"`
}

// TableName returns the flat table name for GORM.
func (Report) TableName() string {
	return ReportsTable
}

// Species is a biological species, unique by its english name.
type Species struct {
	ID int `db:"id" ddl:"SERIAL PRIMARY KEY"`

	// EnglishName is the natural key extracted from the flat table.
	EnglishName string `db:"english_name" ddl:"VARCHAR(255) NOT NULL UNIQUE"`
}

// Region is a galactic region, unique by name.
type Region struct {
	ID int `db:"id" ddl:"SERIAL PRIMARY KEY"`

	// Name is the natural key.
	Name string `db:"name" ddl:"VARCHAR(255) NOT NULL UNIQUE"`

	// NameLocalised is the optional localisation variant.
	NameLocalised sql.NullString `db:"name_localised" ddl:"VARCHAR(255)"`
}

// System is a star system, unique by name, with galactic coordinates
// and an optional reference to its Region.
type System struct {
	ID int `db:"id" ddl:"SERIAL PRIMARY KEY"`

	// Name is the natural key.
	Name string `db:"name" ddl:"VARCHAR(255) NOT NULL UNIQUE"`

	X sql.NullFloat64 `db:"x" ddl:"DOUBLE PRECISION"`
	Y sql.NullFloat64 `db:"y" ddl:"DOUBLE PRECISION"`
	Z sql.NullFloat64 `db:"z" ddl:"DOUBLE PRECISION"`

	// RegionID is null when the system's region is unknown.
	RegionID sql.NullInt32 `db:"region_id" ddl:"INT REFERENCES regions (id)"`
}

// Body is a celestial body, unique by (name, owning system). A body is
// meaningless without its owning system, so SystemID is mandatory.
type Body struct {
	ID int `db:"id" ddl:"SERIAL PRIMARY KEY"`

	Name string `db:"name" ddl:"VARCHAR(255) NOT NULL"`

	SystemID int `db:"system_id" ddl:"INT NOT NULL REFERENCES systems (id)"`
}
