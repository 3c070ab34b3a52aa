package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskzen-go/internal/auth"
)

// requireSession guards user-scoped routes. Requests without a valid
// session are redirected to the login page, never shown an error.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := s.sessions.Parse(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

func sessionEmail(c *gin.Context) string {
	return c.MustGet("userEmail").(string)
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
