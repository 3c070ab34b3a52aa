package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskzen-go/internal/auth"
	"taskzen-go/internal/models"
	"taskzen-go/internal/repository"
)

func (s *Server) settingsPage(c *gin.Context) {
	user, err := s.users.EnsureSettings(c.Request.Context(), sessionEmail(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "settings.html", gin.H{"User": user})
}

// POST /settings
func (s *Server) updateSettings(c *gin.Context) {
	ctx := c.Request.Context()
	email := sessionEmail(c)

	user, err := s.users.EnsureSettings(ctx, email)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	upd := repository.AccountUpdate{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Settings: models.Settings{
			Theme:              c.PostForm("theme"),
			EmailNotifications: c.PostForm("email_notifications") != "",
			TaskReminders:      c.PostForm("task_reminders") != "",
			DefaultPriority:    c.PostForm("default_priority"),
			Timezone:           c.PostForm("timezone"),
		},
	}

	// Validate the optional password change before mutating anything.
	currentPassword := c.PostForm("current_password")
	newPassword := c.PostForm("new_password")
	confirmPassword := c.PostForm("confirm_password")

	var newHash string
	if currentPassword != "" && newPassword != "" {
		if !auth.VerifyPassword(currentPassword, user.PasswordHash) {
			c.HTML(http.StatusUnauthorized, "settings.html", gin.H{
				"User": user, "Error": "Current password is incorrect",
			})
			return
		}
		if newPassword != confirmPassword {
			c.HTML(http.StatusBadRequest, "settings.html", gin.H{
				"User": user, "Error": "New passwords do not match",
			})
			return
		}
		newHash, err = auth.HashPassword(newPassword)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "settings.html", gin.H{
				"User": user, "Error": "Something went wrong",
			})
			return
		}
	}

	if err := s.users.UpdateAccount(ctx, email, upd); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.HTML(http.StatusConflict, "settings.html", gin.H{
				"User": user, "Error": "Email already exists",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "settings.html", gin.H{
			"User": user, "Error": "Something went wrong",
		})
		return
	}

	if newHash != "" {
		if err := s.users.UpdatePassword(ctx, upd.Email, newHash); err != nil {
			c.HTML(http.StatusInternalServerError, "settings.html", gin.H{
				"User": user, "Error": "Something went wrong",
			})
			return
		}
	}

	// An email change moves the session identity with it.
	if upd.Email != email {
		if token, err := s.sessions.Issue(user.ID, upd.Email); err == nil {
			s.setSessionCookie(c, token)
		}
	}

	c.Redirect(http.StatusFound, "/settings")
}
