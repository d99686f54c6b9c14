package context

import (
	"context"

	"github.com/houzze/houzze-api/constant"
)

// GetUserID returns the authenticated caller's id (hex ObjectID) from the context.
func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
