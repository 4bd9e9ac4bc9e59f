package common

import "time"

const (
	ProductCacheTTL = 5 * time.Minute

	TenantIDHeader      = "X-Tenant-ID"
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	DefaultPageLimit = 50
	MaxPageLimit     = 500
)
