// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bill is the predicate function for bill builders.
type Bill func(*sql.Selector)

// InboxItem is the predicate function for inboxitem builders.
type InboxItem func(*sql.Selector)

// IncomingFile is the predicate function for incomingfile builders.
type IncomingFile func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// ServiceProvider is the predicate function for serviceprovider builders.
type ServiceProvider func(*sql.Selector)
