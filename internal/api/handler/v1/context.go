package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/syncbazar/syncbazar-api/internal/api/middleware"
)

// actorID returns the authenticated user id from the request context,
// or zero when the route is unauthenticated.
func actorID(ctx *gin.Context) uint {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0
	}

	id, ok := value.(uint)
	if !ok {
		return 0
	}

	return id
}
