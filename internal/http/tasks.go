package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskzen-go/internal/models"
	"taskzen-go/internal/repository"
)

func (s *Server) addTaskPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_task.html", gin.H{})
}

// POST /add-task
func (s *Server) addTask(c *gin.Context) {
	task := &models.Task{
		UserEmail:   sessionEmail(c),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
		DueDate:     c.PostForm("due_date"),
	}
	if err := s.tasks.Create(c.Request.Context(), task); err != nil {
		c.HTML(http.StatusInternalServerError, "add_task.html", gin.H{"Error": "Could not create task"})
		return
	}
	c.Redirect(http.StatusFound, "/tasks")
}

// GET /tasks?search=&priority=&status=
func (s *Server) listTasks(c *gin.Context) {
	filter := repository.TaskFilter{
		Search:   c.Query("search"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
	}
	s.renderTaskList(c, "All Tasks", filter)
}

// GET /completed
func (s *Server) completedTasks(c *gin.Context) {
	s.renderTaskList(c, "Completed Tasks", repository.TaskFilter{Status: models.StatusCompleted})
}

// GET /pending
func (s *Server) pendingTasks(c *gin.Context) {
	s.renderTaskList(c, "Pending Tasks", repository.TaskFilter{Status: models.StatusPending})
}

// GET /priority
func (s *Server) priorityTasks(c *gin.Context) {
	s.renderTaskList(c, "High Priority Tasks", repository.TaskFilter{Priority: models.PriorityHigh})
}

func (s *Server) renderTaskList(c *gin.Context, heading string, filter repository.TaskFilter) {
	email := sessionEmail(c)

	user, err := s.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	tasks, err := s.tasks.List(c.Request.Context(), email, filter)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load tasks")
		return
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"Heading":  heading,
		"Tasks":    tasks,
		"User":     user,
		"Search":   filter.Search,
		"Priority": filter.Priority,
		"Status":   filter.Status,
	})
}

// POST /update-task/:id
func (s *Server) updateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	upd := repository.TaskUpdate{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
		Status:      c.PostForm("status"),
	}
	if err := s.tasks.Update(c.Request.Context(), sessionEmail(c), id, upd); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		c.String(http.StatusInternalServerError, "could not update task")
		return
	}
	c.Redirect(http.StatusFound, "/tasks")
}

// GET /delete-task/:id
func (s *Server) deleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := s.tasks.Delete(c.Request.Context(), sessionEmail(c), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		c.String(http.StatusInternalServerError, "could not delete task")
		return
	}
	c.Redirect(http.StatusFound, "/tasks")
}

// GET /complete-task/:id returns an empty 204 for asynchronous callers.
// Completing an already completed task returns the same success.
func (s *Server) completeTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := s.tasks.Complete(c.Request.Context(), sessionEmail(c), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "task not found")
			return
		}
		c.String(http.StatusInternalServerError, "could not complete task")
		return
	}
	c.Status(http.StatusNoContent)
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
