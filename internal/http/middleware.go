package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BhavyNayak/stackit/internal/auth"
	"github.com/BhavyNayak/stackit/internal/domain"
)

const currentUserKey = "currentUser"

// requireAuth validates the bearer token and loads the acting user into the
// request context. Any failure aborts with 401.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := auth.ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			respond(c, http.StatusUnauthorized, "missing or invalid bearer token", nil)
			c.Abort()
			return
		}

		userID, err := h.tokens.Parse(raw)
		if err != nil {
			respond(c, http.StatusUnauthorized, "missing or invalid bearer token", nil)
			c.Abort()
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			respond(c, http.StatusUnauthorized, "missing or invalid bearer token", nil)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
