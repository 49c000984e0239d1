// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
// The schema itself is owned by the SQL migrations in internal/database/migrations;
// these structs only describe how to read and write it.
package models

// DemoPlaceholderName is the fixed name stored by every call to the demo endpoint.
const DemoPlaceholderName = "Demo Entry"

// DemoRecordLimit is how many of the most recent demo rows are read back.
const DemoRecordLimit = 10

// Demo is one row of the demo table.
// ID is assigned by SQLite (INTEGER PRIMARY KEY is an alias for rowid), so it is
// unique and increases with every insert. Rows are never updated or deleted.
type Demo struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name"`
}

// TableName overrides GORM's pluralised default ("demos") to match the migration.
func (Demo) TableName() string {
	return "demo"
}
