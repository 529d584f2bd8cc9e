package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gorm.io/gorm/logger"
)

type apiServer struct {
	cfg      Config
	store    Store
	profiles *profileService
	posts    *postService
}

func newAPIServer(cfg Config, store Store) *apiServer {
	return &apiServer{
		cfg:      cfg,
		store:    store,
		profiles: &profileService{store: store},
		posts:    &postService{store: store},
	}
}

func (s *apiServer) router() http.Handler {
	r := chi.NewRouter()

	// allow comma-separated list of origins
	var origins []string
	for _, p := range strings.Split(s.cfg.CORSOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", authHeader},
		MaxAge:         300,
	}))

	// Auth
	r.Post("/api/users", s.handleRegister)
	r.Post("/api/auth", s.handleLogin)
	r.With(s.requireAuth).Get("/api/auth", s.handleMe)

	// Profiles
	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/", s.handleProfileList)
		r.Get("/user/{userID}", s.handleProfileByUser)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.handleProfileMe)
			r.Post("/", s.handleProfileUpsert)
			r.Delete("/", s.handleAccountDelete)
			r.Put("/experience", s.handleExperienceAdd)
			r.Delete("/experience/{id}", s.handleExperienceRemove)
			r.Put("/education", s.handleEducationAdd)
			r.Delete("/education/{id}", s.handleEducationRemove)
		})
	})

	// Posts
	r.Route("/api/posts", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/", s.handlePostCreate)
		r.Get("/", s.handlePostList)
		r.Get("/{id}", s.handlePostGet)
		r.Delete("/{id}", s.handlePostDelete)
		r.Put("/like/{id}", s.handlePostLike)
		r.Put("/unlike/{id}", s.handlePostUnlike)
		r.Post("/comment/{id}", s.handleCommentAdd)
		r.Delete("/comment/{id}/{commentID}", s.handleCommentRemove)
	})

	// Health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

func openStore(cfg Config) Store {
	if cfg.DatabaseURL == "" {
		log.Println("[DB] DATABASE_URL not set; using in-memory store")
		return newMemStore()
	}

	// Quieter GORM logger
	gLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold: 1500 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)
	db, err := openGormIPv4(cfg.DatabaseURL, gLogger) // pgx simple protocol + IPv4 enforced
	if err != nil {
		log.Fatalf("[DB] connect failed: %v", err)
	}
	if err := autoMigrate(db); err != nil {
		log.Fatalf("[DB] migrate failed: %v", err)
	}
	log.Println("[DB] connected")
	return newGormStore(db)
}

func main() {
	mustLoadEnv()
	cfg := loadConfig()

	store := openStore(cfg)
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[DB] close: %v", err)
		}
	}()

	api := newAPIServer(cfg, store)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("API listening on", srv.Addr, "CORS_ORIGIN:", cfg.CORSOrigin)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[api] serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[api] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
}
