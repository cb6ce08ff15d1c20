// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// ApiKey is the predicate function for apikey builders.
type ApiKey func(*sql.Selector)

// ApiKeyUsage is the predicate function for apikeyusage builders.
type ApiKeyUsage func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// ExecutionLog is the predicate function for executionlog builders.
type ExecutionLog func(*sql.Selector)

// ScheduledJob is the predicate function for scheduledjob builders.
type ScheduledJob func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Webhook is the predicate function for webhook builders.
type Webhook func(*sql.Selector)

// WebhookDelivery is the predicate function for webhookdelivery builders.
type WebhookDelivery func(*sql.Selector)
