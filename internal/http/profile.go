package http

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"taskzen-go/internal/repository"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

func (s *Server) profilePage(c *gin.Context) {
	user, err := s.users.GetByEmail(c.Request.Context(), sessionEmail(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{"User": user})
}

// POST /profile
func (s *Server) updateProfile(c *gin.Context) {
	email := sessionEmail(c)

	upd := repository.ProfileUpdate{
		Phone:   c.PostForm("phone"),
		DOB:     c.PostForm("dob"),
		Gender:  c.PostForm("gender"),
		City:    c.PostForm("city"),
		State:   c.PostForm("state"),
		Country: c.PostForm("country"),
		Address: c.PostForm("address"),
		Bio:     c.PostForm("bio"),
	}

	// A missing or disallowed image keeps the prior reference unchanged.
	if file, err := c.FormFile("image"); err == nil {
		if url, err := s.saveImage(c, file); err == nil {
			upd.ImageURL = url
		} else {
			log.Printf("image upload for %s: %v", email, err)
		}
	}

	if err := s.users.UpdateProfile(c.Request.Context(), email, upd); err != nil {
		c.String(http.StatusInternalServerError, "could not update profile")
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}

// saveImage stores an allowed upload under a random name and returns its
// serving path.
func (s *Server) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", os.ErrInvalid
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	name := randomHex(16) + ext
	if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.UploadDir, name)); err != nil {
		return "", err
	}
	return "/static/uploads/" + name, nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}
