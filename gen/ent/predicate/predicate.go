// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Export is the predicate function for export builders.
type Export func(*sql.Selector)

// ExtractionTask is the predicate function for extractiontask builders.
type ExtractionTask func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobRun is the predicate function for jobrun builders.
type JobRun func(*sql.Selector)

// Operation is the predicate function for operation builders.
type Operation func(*sql.Selector)

// SourceFile is the predicate function for sourcefile builders.
type SourceFile func(*sql.Selector)
