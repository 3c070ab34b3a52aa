package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskzen-go/internal/auth"
	"taskzen-go/internal/bot"
	"taskzen-go/internal/config"
	"taskzen-go/internal/repository"
)

type Server struct {
	cfg      *config.Config
	sessions *auth.Sessions
	users    *repository.UserRepository
	tasks    *repository.TaskRepository
	bot      *bot.Bot
}

func NewServer(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging())

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static/uploads", cfg.UploadDir)

	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	chat := repository.NewChatRepository(db)

	s := &Server{
		cfg:      cfg,
		sessions: auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL),
		users:    users,
		tasks:    tasks,
		bot:      bot.NewBot(tasks, chat, bot.NewGeminiClient(cfg)),
	}

	r.GET("/", s.index)
	r.GET("/register", s.registerPage)
	r.POST("/register", s.register)
	r.GET("/login", s.loginPage)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authorized := r.Group("/")
	authorized.Use(s.requireSession())
	{
		authorized.GET("/dashboard", s.dashboard)
		authorized.GET("/profile", s.profilePage)
		authorized.POST("/profile", s.updateProfile)
		authorized.GET("/add-task", s.addTaskPage)
		authorized.POST("/add-task", s.addTask)
		authorized.GET("/tasks", s.listTasks)
		authorized.POST("/update-task/:id", s.updateTask)
		authorized.GET("/delete-task/:id", s.deleteTask)
		authorized.GET("/complete-task/:id", s.completeTask)
		authorized.GET("/completed", s.completedTasks)
		authorized.GET("/pending", s.pendingTasks)
		authorized.GET("/priority", s.priorityTasks)
		authorized.GET("/settings", s.settingsPage)
		authorized.POST("/settings", s.updateSettings)
		authorized.GET("/calendar", s.calendar)
		authorized.GET("/zenbot", s.zenbotPage)
		authorized.POST("/zenbot", s.zenbotMessage)
	}

	return r
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}
