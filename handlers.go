package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Request and response payloads for the game API.
type joinGameRequest struct {
	GameID string `json:"game_id"`
}

type submitGuessRequest struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Guess    string `json:"guess"`
}

type getResultsRequest struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

type startGameResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

type joinGameResponse struct {
	PlayerID string `json:"player_id"`
}

type submitGuessResponse struct {
	Feedback    []GuessResult `json:"feedback"`
	GameOver    bool          `json:"game_over"`
	CorrectWord string        `json:"correct_word,omitempty"`
}

type resultsResponse struct {
	Winner    string  `json:"winner"`
	Attempts  int     `json:"attempts"`
	TimeTaken float64 `json:"time_taken"` // Seconds
}

// startGameHandler creates a new game session and returns both bearer tokens.
func (app *App) startGameHandler(c *gin.Context) {
	gameID, playerID := app.createSession()
	c.JSON(http.StatusOK, startGameResponse{GameID: gameID, PlayerID: playerID})
}

// joinGameHandler registers a second player in an existing game.
func (app *App) joinGameHandler(c *gin.Context) {
	var req joinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GameID == "" {
		clientError(c, "Game ID is required.")
		return
	}

	playerID, err := app.joinSession(req.GameID)
	if err != nil {
		clientError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, joinGameResponse{PlayerID: playerID})
}

// submitGuessHandler evaluates one guess and returns per-letter feedback.
func (app *App) submitGuessHandler(c *gin.Context) {
	var req submitGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GameID == "" || req.PlayerID == "" || req.Guess == "" {
		clientError(c, "Game ID, player ID, and guess are required.")
		return
	}

	guess := normalizeGuess(req.Guess)
	if len(guess) != WordLength || !isAlpha(guess) {
		logWarn("Player %s submitted invalid guess: %q", req.PlayerID, req.Guess)
		clientError(c, ErrInvalidGuess.Error())
		return
	}

	outcome, err := app.submitGuess(req.GameID, req.PlayerID, guess)
	if err != nil {
		clientError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, submitGuessResponse{
		Feedback:    outcome.Feedback,
		GameOver:    outcome.GameOver,
		CorrectWord: outcome.CorrectWord,
	})
}

// getResultsHandler reports game progress or the final ranking for one player.
func (app *App) getResultsHandler(c *gin.Context) {
	var req getResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GameID == "" || req.PlayerID == "" {
		clientError(c, "Game ID and player ID are required.")
		return
	}

	view, err := app.getResults(req.GameID, req.PlayerID)
	if err != nil {
		clientError(c, err.Error())
		return
	}

	if view.Message != "" {
		c.JSON(http.StatusOK, gin.H{"message": view.Message})
		return
	}
	c.JSON(http.StatusOK, resultsResponse{
		Winner:    view.Winner,
		Attempts:  view.Attempts,
		TimeTaken: view.TimeTaken.Seconds(),
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	app.GameMutex.RLock()
	activeGames := len(app.Games)
	app.GameMutex.RUnlock()

	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": len(app.WordList),
		"active_games": activeGames,
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// clientError writes the uniform 400 error shape used by every game endpoint.
func clientError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
