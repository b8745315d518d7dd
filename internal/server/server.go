package server

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/foundly-app/foundly-backend/internal/ai"
	"github.com/foundly-app/foundly-backend/internal/handler"
	appmw "github.com/foundly-app/foundly-backend/internal/middleware"
	"github.com/foundly-app/foundly-backend/internal/repository"
	"github.com/foundly-app/foundly-backend/internal/service"
	"github.com/foundly-app/foundly-backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e         *echo.Echo
	itemRepo  repository.ItemRepository
	matchRepo repository.MatchRepository
	notifRepo repository.NotificationRepository
	chatRepo  repository.ChatRepository
	sha       string
	build     string
}

func New(db *gorm.DB, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			host := u.Hostname()
			if strings.HasSuffix(host, "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	itemRepo := repository.NewItemRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)

	var uploader service.PhotoUploader
	if bucket := os.Getenv("STORAGE_BUCKET"); bucket != "" {
		up, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Printf("storage init failed, photo upload disabled: %v", err)
		} else {
			uploader = up
		}
	}

	itemSvc := service.NewItemService(itemRepo, uploader)
	itemHandler := handler.NewItemHandler(itemSvc)

	matchSvc := service.NewMatchService(matchRepo, notifRepo, itemRepo)
	matchHandler := handler.NewMatchHandler(matchSvc)

	notifSvc := service.NewNotificationService(notifRepo)
	notifHandler := handler.NewNotificationHandler(notifSvc)

	chatSvc := service.NewChatService(chatRepo, matchRepo)
	chatHandler := handler.NewChatHandler(chatSvc)

	aiHandler := handler.NewAIHandler(itemRepo, ai.NewSimilarityClient())

	authMw, err := appmw.NewAuthMiddleware(context.Background())
	if err != nil {
		e.Logger.Fatalf("failed to init firebase auth: %v", err)
	}
	var userHandler *handler.UserHandler
	if authMw != nil && authMw.Client() != nil {
		userHandler = handler.NewUserHandler(authMw.Client())
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api")

	api.GET("/matches/user/:userId", matchHandler.ListByUser)
	api.GET("/matches/:id", matchHandler.Get)
	api.DELETE("/matches/:id", matchHandler.Delete)
	api.POST("/matches/confirm", matchHandler.Confirm)
	api.POST("/matches", matchHandler.Create)

	api.GET("/notifications", notifHandler.ListByUser)
	api.GET("/notifications/:id", notifHandler.Get)
	api.DELETE("/notifications/:id", notifHandler.Delete)
	api.PATCH("/notifications/:id/read", notifHandler.MarkRead)
	api.PATCH("/notifications/read-all", notifHandler.MarkAllRead)
	api.DELETE("/notifications", notifHandler.DeleteAllByUser)

	api.GET("/items", itemHandler.List)
	api.GET("/items/:id", itemHandler.Get)
	api.GET("/items/:id/suggestions", aiHandler.SuggestMatches)

	if authMw != nil {
		api.POST("/items", itemHandler.Create, authMw.RequireAuth)
		api.POST("/items/:id/photo", itemHandler.UploadPhoto, authMw.RequireAuth)
		api.GET("/me/items", itemHandler.ListMine, authMw.RequireAuth)
		api.GET("/matches/:id/messages", chatHandler.ListMessages, authMw.RequireAuth)
		api.POST("/matches/:id/messages", chatHandler.PostMessage, authMw.RequireAuth)
	} else {
		api.POST("/items", itemHandler.Create)
		api.POST("/items/:id/photo", itemHandler.UploadPhoto)
		api.GET("/me/items", itemHandler.ListMine)
		api.GET("/matches/:id/messages", chatHandler.ListMessages)
		api.POST("/matches/:id/messages", chatHandler.PostMessage)
	}
	if userHandler != nil {
		api.GET("/users/:uid/public", userHandler.GetPublic)
	}

	return &Server{
		e:         e,
		itemRepo:  itemRepo,
		matchRepo: matchRepo,
		notifRepo: notifRepo,
		chatRepo:  chatRepo,
		sha:       sha,
		build:     buildTime,
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB injects the database once the async connect finishes; the repos are
// shared with the services, so all of them pick it up.
func (s *Server) SetDB(db *gorm.DB) {
	s.itemRepo.SetDB(db)
	s.matchRepo.SetDB(db)
	s.notifRepo.SetDB(db)
	s.chatRepo.SetDB(db)
}
