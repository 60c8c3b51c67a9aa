// file: main.go
package main

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/TammyBarlow/ur-fit-cards/config"
	"github.com/TammyBarlow/ur-fit-cards/routes"
	"github.com/TammyBarlow/ur-fit-cards/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	backend := services.NewBackendClient(cfg)
	boards := services.NewBoardRegistry(backend)

	r := routes.SetupRouter(cfg, boards)

	rateLimiter := rate.NewLimiter(
		rate.Every(time.Duration(cfg.APIRateLimitWindowMins)*time.Minute/time.Duration(cfg.APIRateLimitRequests)),
		cfg.APIRateLimitRequests,
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.APICORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(rateLimitMiddleware(rateLimiter, r))

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	log.Printf("Starting dashboard on %s (backend: %s)", addr, cfg.BackendBaseURL)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func rateLimitMiddleware(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
