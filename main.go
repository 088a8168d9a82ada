// Command Todo runs the multi-user to-do list HTTP service. It wires
// configuration, the database pool, migrations, the in-memory session store
// and the feature handlers onto a chi router, then serves until interrupted.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/Bvqlz/Todo/apperror"
	"github.com/Bvqlz/Todo/auth"
	"github.com/Bvqlz/Todo/config"
	"github.com/Bvqlz/Todo/db"
	"github.com/Bvqlz/Todo/session"
	"github.com/Bvqlz/Todo/tasks"
	"github.com/Bvqlz/Todo/users"
)

const indexPath = "static/index.html"

func main() {
	// .env is a development convenience; in production the variables are set
	// directly and the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// The session store lives for the lifetime of the process and is the only
	// shared in-process mutable state. It is injected, not global, so tests
	// can build isolated stores.
	sessions := session.NewStore()

	authService := auth.NewAuthService(pool, sessions)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(pool)
	userHandlers := users.NewUserHandlers(userService, sessions)

	taskService := tasks.NewTaskService(pool)
	taskHandler := tasks.NewTaskHandler(taskService)

	r := chi.NewRouter()

	// Global middleware, registered before any routes as chi requires.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that answers in the same JSON error shape as everything
	// else, instead of chi's plain-text 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/", indexHandler)

	r.Post("/register", authHandlers.HandleRegister())
	r.Post("/login", authHandlers.HandleLogin())
	r.Post("/logout", authHandlers.HandleLogout())

	r.Group(func(r chi.Router) {
		r.Use(auth.SessionAuth(sessions))
		r.Get("/me", userHandlers.HandleMe())
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(auth.SessionAuth(sessions))
		taskHandler.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// indexHandler serves the single-page client from disk. A missing asset is a
// deployment problem and is reported as 404 with a plain message.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	html, err := os.ReadFile(indexPath)
	if err != nil {
		log.Printf("index page not found at %s: %v", indexPath, err)
		http.Error(w, "Page was not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

// writeError is a local helper for the panic recovery middleware, kept
// separate to avoid depending on the auth package from main.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
