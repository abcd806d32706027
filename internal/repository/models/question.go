package models

import (
	"database/sql"
	"time"
)

// Question represents a row in the questions table. Options and tags are
// JSON documents stored in CLOB columns.
type Question struct {
	ID          string       `db:"ID"` // ULID
	Text        string       `db:"TEXT"`
	Type        string       `db:"QUESTION_TYPE"`
	Options     OptionSlice  `db:"OPTIONS"`
	PrimaryTags StringSlice  `db:"PRIMARY_TAGS"`
	Category    string       `db:"CATEGORY"`
	Difficulty  string       `db:"DIFFICULTY"`
	TimesUsed   int          `db:"TIMES_USED"`
	IsActive    int          `db:"IS_ACTIVE"` // Oracle NUMBER(1) boolean
	CreatedAt   time.Time    `db:"CREATED_AT"`
	UpdatedAt   time.Time    `db:"UPDATED_AT"`
	DeletedAt   sql.NullTime `db:"DELETED_AT"`
}
