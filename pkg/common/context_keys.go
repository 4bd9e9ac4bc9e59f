package common

type contextKey string

const (
	TenantContextKey contextKey = "tenant_id"
	UserContextKey   contextKey = "user"
	TraceIdKey       contextKey = "trace_id"
)
