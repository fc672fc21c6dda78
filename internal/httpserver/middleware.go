package httpserver

import (
	"net/http"
	"strings"

	"shop-api/internal/authz"
	"shop-api/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	currentUserKey = "currentUser"
	sessionIDKey   = "sessionID"
	// SessionHeader carries the guest-session token issued by POST /session.
	SessionHeader = "X-Session-Id"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// authMiddleware resolves the bearer token into a user. With required=false
// an absent or invalid token just leaves the request anonymous.
func authMiddleware(auth AuthService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if user, err := auth.LookupByToken(c.Request.Context(), token); err == nil {
				c.Set(currentUserKey, user)
			}
		}
		if required && currentUser(c) == nil {
			respondError(c, http.StatusUnauthorized, "unauthenticated", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// sessionMiddleware resolves the guest-session header for anonymous carts.
// Invalid or absent tokens leave the request without a session.
func sessionMiddleware(sessions SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(SessionHeader))
		if token != "" {
			if sessionID, err := sessions.Resolve(c.Request.Context(), token); err == nil {
				c.Set(sessionIDKey, sessionID)
			}
		}
		c.Next()
	}
}

// requireAuthz gates a route group behind a capability check.
func requireAuthz(az authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := az.Authorize(currentUser(c), action, nil); err != nil {
			respondError(c, http.StatusForbidden, "forbidden", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

// cartOwner derives the CartOwner for this request: the authenticated user
// when present, otherwise the guest session. ok=false means neither.
func cartOwner(c *gin.Context) (domain.CartOwner, bool) {
	if u := currentUser(c); u != nil {
		return domain.UserOwner(u.ID), true
	}
	if v, exists := c.Get(sessionIDKey); exists {
		if sessionID, ok := v.(string); ok && sessionID != "" {
			return domain.SessionOwner(sessionID), true
		}
	}
	return domain.CartOwner{}, false
}
