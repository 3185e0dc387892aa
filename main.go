package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting Vortduelo in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	wordsFile := getEnvString("WORDS_FILE", "data/words.json")
	words, err := loadWords(wordsFile)
	if err != nil {
		logFatal("Failed to load words from %s: %v", wordsFile, err)
	}
	if len(words) == 0 {
		logFatal("Word list %s contains no playable words", wordsFile)
	}
	logInfo("Loaded %d words from %s", len(words), wordsFile)

	app := newApp(words)
	app.IsProduction = isProduction

	router := setupRouter(app)
	startServer(router)
}

// newApp builds an App with an empty game table and default limits.
func newApp(words []string) *App {
	return &App{
		WordList:       words,
		Games:          make(map[string]*Session),
		StartTime:      time.Now(),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
	}
}

// setupRouter wires middleware and the game routes onto a gin engine.
func setupRouter(app *App) *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(requestIDMiddleware())
	router.Use(corsConfig())

	// Game state changes on every request, so nothing here is cacheable.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteStartGame, app.rateLimitMiddleware(), app.startGameHandler)
	router.POST(RouteJoinGame, app.rateLimitMiddleware(), app.joinGameHandler)
	router.POST(RouteSubmitGuess, app.rateLimitMiddleware(), app.submitGuessHandler)
	router.POST(RouteGetResults, app.getResultsHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

// corsConfig allows the browser client to call the API cross-origin. With no
// CLIENT_ORIGIN configured the API is open, matching the original deployment.
func corsConfig() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "X-Request-Id"}
	if origins := getEnvString("CLIENT_ORIGIN", ""); origins != "" {
		cfg.AllowOrigins = splitAndTrim(origins)
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}

func startServer(router *gin.Engine) {
	port := getEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
