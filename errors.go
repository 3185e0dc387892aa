package main

import "errors"

// Client-input failures surfaced by the session store. The HTTP layer maps
// each of these to a 400 response; none of them corrupt session state.
var (
	ErrSessionNotFound = errors.New("invalid game ID")
	ErrPlayerNotFound  = errors.New("invalid player ID")
	ErrSessionFull     = errors.New("game already has 2 players")
	ErrPlayerCompleted = errors.New("player already completed the game")
	ErrMaxAttempts     = errors.New("maximum attempts reached")
	ErrInvalidGuess    = errors.New("guess must be 5 letters")
)
