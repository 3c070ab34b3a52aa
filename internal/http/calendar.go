package http

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskzen-go/internal/calendar"
	"taskzen-go/internal/repository"
)

// GET /calendar
func (s *Server) calendar(c *gin.Context) {
	email := sessionEmail(c)

	user, err := s.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	tasks, err := s.tasks.List(c.Request.Context(), email, repository.TaskFilter{})
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load tasks")
		return
	}

	events := calendar.ToEvents(tasks)
	eventsJSON, err := json.Marshal(events)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not render calendar")
		return
	}

	c.HTML(http.StatusOK, "calendar.html", gin.H{
		"User":       user,
		"Events":     events,
		"EventsJSON": template.JS(eventsJSON),
	})
}
