package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskzen-go/internal/dashboard"
	"taskzen-go/internal/repository"
)

// GET /dashboard
func (s *Server) dashboard(c *gin.Context) {
	email := sessionEmail(c)

	user, err := s.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// One fetch covers both the counters and the recent slice: the list is
	// already sorted newest first.
	tasks, err := s.tasks.List(c.Request.Context(), email, repository.TaskFilter{})
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load tasks")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":        user,
		"Stats":       dashboard.Summarize(tasks),
		"RecentTasks": dashboard.Recent(tasks),
	})
}
