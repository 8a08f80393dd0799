package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/accountd/internal/common"
	"github.com/dmitrijs2005/accountd/internal/server/auth"
)

// userIDKey is the gin context key under which the authenticated account id
// is stored for downstream handlers.
const userIDKey = "userID"

// authMiddleware guards protected routes. The token is the part after the
// first space of the Authorization header ("Bearer <token>"). A missing
// token yields 401; a token that fails verification (expired, malformed,
// bad signature) yields 400, a distinction the API has always made.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		var token string
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 {
				token = parts[1]
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied."})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				s.logger.Debug(c.Request.Context(), "expired token rejected")
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid token."})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
