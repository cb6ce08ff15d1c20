// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agent-orchestra/orchestra/ent/agent"
	"github.com/agent-orchestra/orchestra/ent/apikey"
	"github.com/agent-orchestra/orchestra/ent/apikeyusage"
	"github.com/agent-orchestra/orchestra/ent/auditlog"
	"github.com/agent-orchestra/orchestra/ent/execution"
	"github.com/agent-orchestra/orchestra/ent/executionlog"
	"github.com/agent-orchestra/orchestra/ent/scheduledjob"
	"github.com/agent-orchestra/orchestra/ent/schema"
	"github.com/agent-orchestra/orchestra/ent/user"
	"github.com/agent-orchestra/orchestra/ent/webhook"
	"github.com/agent-orchestra/orchestra/ent/webhookdelivery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescActive is the schema descriptor for active field.
	agentDescActive := agentFields[6].Descriptor()
	// agent.DefaultActive holds the default value on creation for the active field.
	agent.DefaultActive = agentDescActive.Default.(bool)
	// agentDescTotalExecutions is the schema descriptor for total_executions field.
	agentDescTotalExecutions := agentFields[7].Descriptor()
	// agent.DefaultTotalExecutions holds the default value on creation for the total_executions field.
	agent.DefaultTotalExecutions = agentDescTotalExecutions.Default.(int64)
	// agentDescSuccessfulExecutions is the schema descriptor for successful_executions field.
	agentDescSuccessfulExecutions := agentFields[8].Descriptor()
	// agent.DefaultSuccessfulExecutions holds the default value on creation for the successful_executions field.
	agent.DefaultSuccessfulExecutions = agentDescSuccessfulExecutions.Default.(int64)
	// agentDescFailedExecutions is the schema descriptor for failed_executions field.
	agentDescFailedExecutions := agentFields[9].Descriptor()
	// agent.DefaultFailedExecutions holds the default value on creation for the failed_executions field.
	agent.DefaultFailedExecutions = agentDescFailedExecutions.Default.(int64)
	// agentDescAvgDurationMs is the schema descriptor for avg_duration_ms field.
	agentDescAvgDurationMs := agentFields[10].Descriptor()
	// agent.DefaultAvgDurationMs holds the default value on creation for the avg_duration_ms field.
	agent.DefaultAvgDurationMs = agentDescAvgDurationMs.Default.(float64)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[12].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[13].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	apikeyFields := schema.ApiKey{}.Fields()
	_ = apikeyFields
	// apikeyDescActive is the schema descriptor for active field.
	apikeyDescActive := apikeyFields[6].Descriptor()
	// apikey.DefaultActive holds the default value on creation for the active field.
	apikey.DefaultActive = apikeyDescActive.Default.(bool)
	// apikeyDescUsageCount is the schema descriptor for usage_count field.
	apikeyDescUsageCount := apikeyFields[8].Descriptor()
	// apikey.DefaultUsageCount holds the default value on creation for the usage_count field.
	apikey.DefaultUsageCount = apikeyDescUsageCount.Default.(int64)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[10].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	apikeyusageFields := schema.ApiKeyUsage{}.Fields()
	_ = apikeyusageFields
	// apikeyusageDescCreatedAt is the schema descriptor for created_at field.
	apikeyusageDescCreatedAt := apikeyusageFields[7].Descriptor()
	// apikeyusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikeyusage.DefaultCreatedAt = apikeyusageDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescPriority is the schema descriptor for priority field.
	executionDescPriority := executionFields[4].Descriptor()
	// execution.DefaultPriority holds the default value on creation for the priority field.
	execution.DefaultPriority = executionDescPriority.Default.(int)
	// executionDescEnvironment is the schema descriptor for environment field.
	executionDescEnvironment := executionFields[9].Descriptor()
	// execution.DefaultEnvironment holds the default value on creation for the environment field.
	execution.DefaultEnvironment = executionDescEnvironment.Default.(string)
	// executionDescCreatedAt is the schema descriptor for created_at field.
	executionDescCreatedAt := executionFields[20].Descriptor()
	// execution.DefaultCreatedAt holds the default value on creation for the created_at field.
	execution.DefaultCreatedAt = executionDescCreatedAt.Default.(func() time.Time)
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescCreatedAt is the schema descriptor for created_at field.
	executionlogDescCreatedAt := executionlogFields[6].Descriptor()
	// executionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionlog.DefaultCreatedAt = executionlogDescCreatedAt.Default.(func() time.Time)
	scheduledjobFields := schema.ScheduledJob{}.Fields()
	_ = scheduledjobFields
	// scheduledjobDescActive is the schema descriptor for active field.
	scheduledjobDescActive := scheduledjobFields[7].Descriptor()
	// scheduledjob.DefaultActive holds the default value on creation for the active field.
	scheduledjob.DefaultActive = scheduledjobDescActive.Default.(bool)
	// scheduledjobDescCreatedAt is the schema descriptor for created_at field.
	scheduledjobDescCreatedAt := scheduledjobFields[10].Descriptor()
	// scheduledjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledjob.DefaultCreatedAt = scheduledjobDescCreatedAt.Default.(func() time.Time)
	// scheduledjobDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledjobDescUpdatedAt := scheduledjobFields[11].Descriptor()
	// scheduledjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledjob.DefaultUpdatedAt = scheduledjobDescUpdatedAt.Default.(func() time.Time)
	// scheduledjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledjob.UpdateDefaultUpdatedAt = scheduledjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[4].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookFields := schema.Webhook{}.Fields()
	_ = webhookFields
	// webhookDescActive is the schema descriptor for active field.
	webhookDescActive := webhookFields[5].Descriptor()
	// webhook.DefaultActive holds the default value on creation for the active field.
	webhook.DefaultActive = webhookDescActive.Default.(bool)
	// webhookDescCreatedAt is the schema descriptor for created_at field.
	webhookDescCreatedAt := webhookFields[8].Descriptor()
	// webhook.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhook.DefaultCreatedAt = webhookDescCreatedAt.Default.(func() time.Time)
	// webhookDescUpdatedAt is the schema descriptor for updated_at field.
	webhookDescUpdatedAt := webhookFields[9].Descriptor()
	// webhook.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhook.DefaultUpdatedAt = webhookDescUpdatedAt.Default.(func() time.Time)
	// webhook.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhook.UpdateDefaultUpdatedAt = webhookDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookdeliveryFields := schema.WebhookDelivery{}.Fields()
	_ = webhookdeliveryFields
	// webhookdeliveryDescAttemptCount is the schema descriptor for attempt_count field.
	webhookdeliveryDescAttemptCount := webhookdeliveryFields[6].Descriptor()
	// webhookdelivery.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	webhookdelivery.DefaultAttemptCount = webhookdeliveryDescAttemptCount.Default.(int)
	// webhookdeliveryDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryDescCreatedAt := webhookdeliveryFields[12].Descriptor()
	// webhookdelivery.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdelivery.DefaultCreatedAt = webhookdeliveryDescCreatedAt.Default.(func() time.Time)
}
