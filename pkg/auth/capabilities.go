package auth

// Capability strings attached to API keys and required by endpoints.
const (
	CapAdminAll        = "admin:all"
	CapExecutionsRead  = "executions:read"
	CapExecutionsWrite = "executions:write"
	CapAgentsManage    = "agents:manage"
	CapWebhooksManage  = "webhooks:manage"
)

// KnownCapabilities enumerates every capability an API key may carry.
var KnownCapabilities = []string{
	CapAdminAll,
	CapExecutionsRead,
	CapExecutionsWrite,
	CapAgentsManage,
	CapWebhooksManage,
}

// HasCapability reports whether the permission set grants the required
// capability. admin:all subsumes everything.
func HasCapability(permissions []string, required string) bool {
	for _, p := range permissions {
		if p == CapAdminAll || p == required {
			return true
		}
	}
	return false
}

// IsKnownCapability validates a capability string at key-creation time.
func IsKnownCapability(capability string) bool {
	for _, c := range KnownCapabilities {
		if c == capability {
			return true
		}
	}
	return false
}
