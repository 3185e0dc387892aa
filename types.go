package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// contextKey is a private type for request-scoped context values.
type contextKey string

// WordList represents the JSON structure for loading the secret word pool
type WordList struct {
	Words []string `json:"words"`
}

// App holds all server state: configuration, the word pool, and live games.
type App struct {
	WordList []string

	Games        map[string]*Session
	GameMutex    sync.RWMutex
	StartTime    time.Time
	IsProduction bool

	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
}

// Session is one game instance: a fixed secret word shared by up to two players.
type Session struct {
	ID          string
	Word        string // Immutable once the session is created
	Players     map[string]*PlayerProgress
	PlayerOrder []string // Join order
	CreatedAt   time.Time
}

// PlayerProgress tracks one player's guesses and completion state within a session.
type PlayerProgress struct {
	Attempts  int
	Completed bool
	Guesses   []string
	StartTime time.Time
	EndTime   time.Time // Zero until the player completes; set exactly once
}

// GuessResult represents a single letter's evaluation
type GuessResult struct {
	Letter string `json:"letter"`
	Status string `json:"status"` // "correct", "present", or "absent"
}

// GuessOutcome is the session store's answer to a submitted guess.
type GuessOutcome struct {
	Feedback    []GuessResult
	GameOver    bool   // True only when every player in the session has completed
	CorrectWord string // Revealed only when GameOver is true
}

// ResultsView is the session store's answer to a results query.
// Exactly one of Message or Winner is meaningful: in-progress and no-winner
// states carry a Message, a decided game carries the winner fields.
type ResultsView struct {
	Message   string
	Winner    string
	Attempts  int
	TimeTaken time.Duration
}
