package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskzen-go/internal/auth"
	"taskzen-go/internal/models"
	"taskzen-go/internal/repository"
)

func (s *Server) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// POST /register
func (s *Server) register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if name == "" || email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "All fields are required"})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "Something went wrong"})
		return
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.HTML(http.StatusConflict, "register.html", gin.H{"Error": "Email already exists"})
			return
		}
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "Something went wrong"})
		return
	}

	// Registration does not auto-authenticate.
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// POST /login
func (s *Server) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := s.users.GetByEmail(c.Request.Context(), email)
	if err != nil || !auth.VerifyPassword(password, user.PasswordHash) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid email or password"})
		return
	}

	token, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Something went wrong"})
		return
	}

	// Replaces any prior session state.
	s.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /logout
func (s *Server) logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(auth.CookieName, token, int(s.sessions.TTL().Seconds()), "/", "", false, true)
}
