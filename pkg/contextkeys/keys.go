package contextkeys

type contextKey string

const (
	UserIDKey          contextKey = "UserID"
	UserRoleIDKey      contextKey = "UserRoleID"
	UserPermissionsKey contextKey = "UserPermissions"
	RequestIDKey       contextKey = "RequestID"
)
