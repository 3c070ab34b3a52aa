package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const chatHistoryLimit = 20

// GET /zenbot
func (s *Server) zenbotPage(c *gin.Context) {
	email := sessionEmail(c)

	user, err := s.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	history, err := s.bot.History(c.Request.Context(), email, chatHistoryLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load chat history")
		return
	}

	c.HTML(http.StatusOK, "zenbot.html", gin.H{"User": user, "History": history})
}

// POST /zenbot takes JSON in and returns JSON out.
func (s *Server) zenbotMessage(c *gin.Context) {
	var input struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(),
		time.Duration(s.cfg.ReqTimeoutSec)*time.Second)
	defer cancel()

	reply, err := s.bot.HandleMessage(ctx, sessionEmail(c), input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
