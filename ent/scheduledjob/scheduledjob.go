// Code generated by ent, DO NOT EDIT.

package scheduledjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduledjob type in the database.
	Label = "scheduled_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldQueue holds the string denoting the queue field in the database.
	FieldQueue = "queue"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCronExpr holds the string denoting the cron_expr field in the database.
	FieldCronExpr = "cron_expr"
	// FieldRunAt holds the string denoting the run_at field in the database.
	FieldRunAt = "run_at"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the scheduledjob in the database.
	Table = "scheduled_jobs"
)

// Columns holds all SQL columns for scheduledjob fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldQueue,
	FieldKind,
	FieldCronExpr,
	FieldRunAt,
	FieldPayload,
	FieldActive,
	FieldLastRunAt,
	FieldLastError,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Queue defines the type for the "queue" enum field.
type Queue string

// Queue values.
const (
	QueueExecution    Queue = "execution"
	QueueCleanup      Queue = "cleanup"
	QueueNotification Queue = "notification"
)

func (q Queue) String() string {
	return string(q)
}

// QueueValidator is a validator for the "queue" field enum values. It is called by the builders before save.
func QueueValidator(q Queue) error {
	switch q {
	case QueueExecution, QueueCleanup, QueueNotification:
		return nil
	default:
		return fmt.Errorf("scheduledjob: invalid enum value for queue field: %q", q)
	}
}

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindDeferred  Kind = "deferred"
	KindRecurring Kind = "recurring"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindDeferred, KindRecurring:
		return nil
	default:
		return fmt.Errorf("scheduledjob: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the ScheduledJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByQueue orders the results by the queue field.
func ByQueue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueue, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCronExpr orders the results by the cron_expr field.
func ByCronExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronExpr, opts...).ToFunc()
}

// ByRunAt orders the results by the run_at field.
func ByRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunAt, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
