// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFramework holds the string denoting the framework field in the database.
	FieldFramework = "framework"
	// FieldConfiguration holds the string denoting the configuration field in the database.
	FieldConfiguration = "configuration"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldTotalExecutions holds the string denoting the total_executions field in the database.
	FieldTotalExecutions = "total_executions"
	// FieldSuccessfulExecutions holds the string denoting the successful_executions field in the database.
	FieldSuccessfulExecutions = "successful_executions"
	// FieldFailedExecutions holds the string denoting the failed_executions field in the database.
	FieldFailedExecutions = "failed_executions"
	// FieldAvgDurationMs holds the string denoting the avg_duration_ms field in the database.
	FieldAvgDurationMs = "avg_duration_ms"
	// FieldLastExecutedAt holds the string denoting the last_executed_at field in the database.
	FieldLastExecutedAt = "last_executed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "agents"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "owner_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "executions"
	// ExecutionsInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionsInverseTable = "executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldFramework,
	FieldConfiguration,
	FieldTags,
	FieldActive,
	FieldTotalExecutions,
	FieldSuccessfulExecutions,
	FieldFailedExecutions,
	FieldAvgDurationMs,
	FieldLastExecutedAt,
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
	// DefaultTotalExecutions holds the default value on creation for the "total_executions" field.
	DefaultTotalExecutions int64
	// DefaultSuccessfulExecutions holds the default value on creation for the "successful_executions" field.
	DefaultSuccessfulExecutions int64
	// DefaultFailedExecutions holds the default value on creation for the "failed_executions" field.
	DefaultFailedExecutions int64
	// DefaultAvgDurationMs holds the default value on creation for the "avg_duration_ms" field.
	DefaultAvgDurationMs float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFramework orders the results by the framework field.
func ByFramework(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramework, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByTotalExecutions orders the results by the total_executions field.
func ByTotalExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExecutions, opts...).ToFunc()
}

// BySuccessfulExecutions orders the results by the successful_executions field.
func BySuccessfulExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulExecutions, opts...).ToFunc()
}

// ByFailedExecutions orders the results by the failed_executions field.
func ByFailedExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedExecutions, opts...).ToFunc()
}

// ByAvgDurationMs orders the results by the avg_duration_ms field.
func ByAvgDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgDurationMs, opts...).ToFunc()
}

// ByLastExecutedAt orders the results by the last_executed_at field.
func ByLastExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExecutedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
