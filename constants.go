package main

// Game configuration constants
const (
	MaxAttempts = 5 // Maximum number of guesses per player
	WordLength  = 5 // Length of the word to guess
	MaxPlayers  = 2 // Fixed player slots per game
)

// Guess status constants
const (
	GuessStatusCorrect = "correct"
	GuessStatusPresent = "present"
	GuessStatusAbsent  = "absent"
)

// Route constants
const (
	RouteStartGame   = "/start-game"
	RouteJoinGame    = "/join-game"
	RouteSubmitGuess = "/submit-guess"
	RouteGetResults  = "/get-results"
	RouteHealthz     = "/healthz"
)

// Player-facing result messages
const (
	MessageNotYetWon = "You haven't guessed the word yet."
	MessageWaiting   = "Waiting for other player to finish."
	MessageNoWinner  = "No winner."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
