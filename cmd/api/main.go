package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"shaderhub/cmd/app"
	"shaderhub/internal/config"
	handlers "shaderhub/internal/handler"
	"shaderhub/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY не установлен в .env файле")
	}

	db, services, err := app.App(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации: %v", err)
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	// setting up routes
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.HealthHandler(db)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", handler.RefreshToken).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", handler.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/shaders", handler.ListShaders).Methods(http.MethodGet)
	api.HandleFunc("/shaders", handler.UpsertShader).Methods(http.MethodPost)
	api.HandleFunc("/shaders/{id:[0-9]+}", handler.GetShader).Methods(http.MethodGet)
	api.HandleFunc("/shaders/{id:[0-9]+}", handler.DeleteShader).Methods(http.MethodDelete)
	api.HandleFunc("/shaders/{id:[0-9]+}/like", handler.LikeShader).Methods(http.MethodPost)
	api.HandleFunc("/shaders/{id:[0-9]+}/like", handler.UnlikeShader).Methods(http.MethodDelete)
	api.HandleFunc("/shaders/{id:[0-9]+}/comments", handler.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id:[0-9]+}/hide", handler.HideComment).Methods(http.MethodPost)

	api.HandleFunc("/profile/{id:[0-9]+}", handler.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile", handler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/profile/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
