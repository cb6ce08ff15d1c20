// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "framework", Type: field.TypeString},
		{Name: "configuration", Type: field.TypeJSON},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "total_executions", Type: field.TypeInt64, Default: 0},
		{Name: "successful_executions", Type: field.TypeInt64, Default: 0},
		{Name: "failed_executions", Type: field.TypeInt64, Default: 0},
		{Name: "avg_duration_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "last_executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_users_agents",
				Columns:    []*schema.Column{AgentsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_owner_id_name",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[13], AgentsColumns[1]},
			},
			{
				Name:    "agent_framework",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
			{
				Name:    "agent_active",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[5]},
			},
		},
	}
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "key_prefix", Type: field.TypeString},
		{Name: "permissions", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "usage_count", Type: field.TypeInt64, Default: 0},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_keys_users_api_keys",
				Columns:    []*schema.Column{APIKeysColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_user_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[10]},
			},
			{
				Name:    "apikey_active_expires_at",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[5], APIKeysColumns[6]},
			},
		},
	}
	// APIKeyUsagesColumns holds the columns for the "api_key_usages" table.
	APIKeyUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "api_key_id", Type: field.TypeString},
	}
	// APIKeyUsagesTable holds the schema information for the "api_key_usages" table.
	APIKeyUsagesTable = &schema.Table{
		Name:       "api_key_usages",
		Columns:    APIKeyUsagesColumns,
		PrimaryKey: []*schema.Column{APIKeyUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_key_usages_api_keys_usages",
				Columns:    []*schema.Column{APIKeyUsagesColumns[7]},
				RefColumns: []*schema.Column{APIKeysColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "apikeyusage_api_key_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{APIKeyUsagesColumns[7], APIKeyUsagesColumns[6]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "resource", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled", "timeout"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 2},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"manual", "scheduled", "webhook", "recurring"}, Default: "manual"},
		{Name: "environment", Type: field.TypeString, Default: "production"},
		{Name: "config_override", Type: field.TypeJSON, Nullable: true},
		{Name: "timeout_ms", Type: field.TypeInt64},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "submitter_id", Type: field.TypeString},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "executions_agents_executions",
				Columns:    []*schema.Column{ExecutionsColumns[19]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "executions_users_executions",
				Columns:    []*schema.Column{ExecutionsColumns[20]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "execution_state",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1]},
			},
			{
				Name:    "execution_submitter_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[20], ExecutionsColumns[18]},
			},
			{
				Name:    "execution_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[19], ExecutionsColumns[18]},
			},
			{
				Name:    "execution_state_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1], ExecutionsColumns[2], ExecutionsColumns[18]},
			},
			{
				Name:    "execution_state_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1], ExecutionsColumns[17]},
			},
			{
				Name:    "execution_state_completed_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1], ExecutionsColumns[12]},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"debug", "info", "warn", "error", "fatal"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_logs_executions_logs",
				Columns:    []*schema.Column{ExecutionLogsColumns[6]},
				RefColumns: []*schema.Column{ExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_execution_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ExecutionLogsColumns[6], ExecutionLogsColumns[3]},
			},
			{
				Name:    "executionlog_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[6], ExecutionLogsColumns[5]},
			},
			{
				Name:    "executionlog_execution_id_level",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[6], ExecutionLogsColumns[1]},
			},
		},
	}
	// ScheduledJobsColumns holds the columns for the "scheduled_jobs" table.
	ScheduledJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeEnum, Enums: []string{"execution", "cleanup", "notification"}},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"deferred", "recurring"}},
		{Name: "cron_expr", Type: field.TypeString, Nullable: true},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ScheduledJobsTable holds the schema information for the "scheduled_jobs" table.
	ScheduledJobsTable = &schema.Table{
		Name:       "scheduled_jobs",
		Columns:    ScheduledJobsColumns,
		PrimaryKey: []*schema.Column{ScheduledJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledjob_active_run_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[7], ScheduledJobsColumns[5]},
			},
			{
				Name:    "scheduledjob_queue",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "admin"}, Default: "user"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// WebhooksColumns holds the columns for the "webhooks" table.
	WebhooksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "subscribed_events", Type: field.TypeJSON},
		{Name: "secret_encrypted", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "disabled_reason", Type: field.TypeString, Nullable: true},
		{Name: "disabled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
	}
	// WebhooksTable holds the schema information for the "webhooks" table.
	WebhooksTable = &schema.Table{
		Name:       "webhooks",
		Columns:    WebhooksColumns,
		PrimaryKey: []*schema.Column{WebhooksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhooks_users_webhooks",
				Columns:    []*schema.Column{WebhooksColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhook_owner_id_active",
				Unique:  false,
				Columns: []*schema.Column{WebhooksColumns[9], WebhooksColumns[4]},
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "event_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "delivering", "delivered", "retry", "failed"}, Default: "pending"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_status_code", Type: field.TypeInt, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "webhook_id", Type: field.TypeString},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_deliveries_webhooks_deliveries",
				Columns:    []*schema.Column{WebhookDeliveriesColumns[12]},
				RefColumns: []*schema.Column{WebhooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_webhook_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[12], WebhookDeliveriesColumns[6]},
			},
			{
				Name:    "webhookdelivery_state_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[4], WebhookDeliveriesColumns[6]},
			},
			{
				Name:    "webhookdelivery_webhook_id_state_failed_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[12], WebhookDeliveriesColumns[4], WebhookDeliveriesColumns[8]},
			},
			{
				Name:    "webhookdelivery_event_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		APIKeysTable,
		APIKeyUsagesTable,
		AuditLogsTable,
		ExecutionsTable,
		ExecutionLogsTable,
		ScheduledJobsTable,
		UsersTable,
		WebhooksTable,
		WebhookDeliveriesTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = UsersTable
	APIKeysTable.ForeignKeys[0].RefTable = UsersTable
	APIKeyUsagesTable.ForeignKeys[0].RefTable = APIKeysTable
	ExecutionsTable.ForeignKeys[0].RefTable = AgentsTable
	ExecutionsTable.ForeignKeys[1].RefTable = UsersTable
	ExecutionLogsTable.ForeignKeys[0].RefTable = ExecutionsTable
	WebhooksTable.ForeignKeys[0].RefTable = UsersTable
	WebhookDeliveriesTable.ForeignKeys[0].RefTable = WebhooksTable
}
