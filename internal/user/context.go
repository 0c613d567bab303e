package user

import "context"

type ctxKey string

const contextUserKey ctxKey = "user"

// UserFromContext returns the session-resolved user placed by the auth
// middleware or route guard.
func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(contextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}
