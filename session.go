package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// newPlayerProgress returns a fresh progress record for a player joining now.
func newPlayerProgress() *PlayerProgress {
	return &PlayerProgress{
		Attempts:  0,
		Completed: false,
		Guesses:   []string{},
		StartTime: time.Now(),
	}
}

// createSession starts a new game with a random secret word and registers the
// initiating player. Both identifiers double as bearer tokens, so they are
// random uuids rather than anything guessable.
func (app *App) createSession() (string, string) {
	sessionID := uuid.NewString()
	playerID := uuid.NewString()

	session := &Session{
		ID:          sessionID,
		Word:        app.getRandomWord(),
		Players:     map[string]*PlayerProgress{playerID: newPlayerProgress()},
		PlayerOrder: []string{playerID},
		CreatedAt:   time.Now(),
	}

	app.GameMutex.Lock()
	app.Games[sessionID] = session
	app.GameMutex.Unlock()

	logInfo("Created game %s with word: %s", sessionID, session.Word)
	return sessionID, playerID
}

// joinSession registers a second player in an existing game.
func (app *App) joinSession(sessionID string) (string, error) {
	app.GameMutex.Lock()
	defer app.GameMutex.Unlock()

	session, ok := app.Games[sessionID]
	if !ok {
		return "", ErrSessionNotFound
	}
	if len(session.Players) >= MaxPlayers {
		return "", ErrSessionFull
	}

	playerID := uuid.NewString()
	session.Players[playerID] = newPlayerProgress()
	session.PlayerOrder = append(session.PlayerOrder, playerID)

	logInfo("Player %s joined game %s", playerID, sessionID)
	return playerID, nil
}

// submitGuess evaluates one guess for one player and updates their progress.
// All validation happens before any mutation, with one deliberate exception:
// a player found with exhausted attempts is marked completed on this very
// access, so the opponent's game_over can settle even if this player never
// guesses again.
func (app *App) submitGuess(sessionID, playerID, guess string) (*GuessOutcome, error) {
	app.GameMutex.Lock()
	defer app.GameMutex.Unlock()

	session, ok := app.Games[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	player, ok := session.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if player.Completed {
		return nil, ErrPlayerCompleted
	}
	if player.Attempts >= MaxAttempts {
		finalize(player)
		return nil, ErrMaxAttempts
	}

	feedback, err := checkGuess(guess, session.Word)
	if err != nil {
		return nil, err
	}

	player.Attempts++
	player.Guesses = append(player.Guesses, guess)

	if guess == session.Word || player.Attempts >= MaxAttempts {
		finalize(player)
	}

	outcome := &GuessOutcome{
		Feedback: feedback,
		GameOver: session.allCompleted(),
	}
	// The word is revealed only once every player has finished, so a faster
	// player's response can't leak it to an opponent who is still guessing.
	if outcome.GameOver {
		outcome.CorrectWord = session.Word
	}
	return outcome, nil
}

// getResults reports the state of the game from one player's point of view:
// still guessing, waiting for the opponent, or the final ranking.
func (app *App) getResults(sessionID, playerID string) (*ResultsView, error) {
	app.GameMutex.RLock()
	defer app.GameMutex.RUnlock()

	session, ok := app.Games[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	player, ok := session.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if !session.allFinished() {
		if !session.hasWon(player) {
			return &ResultsView{Message: MessageNotYetWon}, nil
		}
		return &ResultsView{Message: MessageWaiting}, nil
	}

	// Rank everyone who found the word by fewest attempts, then shortest
	// elapsed time. Players who only exhausted their attempts never place.
	winners := lo.Filter(session.PlayerOrder, func(pid string, _ int) bool {
		return session.hasWon(session.Players[pid])
	})
	if len(winners) == 0 {
		return &ResultsView{Message: MessageNoWinner}, nil
	}

	winnerID := lo.MinBy(winners, func(a, b string) bool {
		pa, pb := session.Players[a], session.Players[b]
		if pa.Attempts != pb.Attempts {
			return pa.Attempts < pb.Attempts
		}
		return pa.elapsed() < pb.elapsed()
	})
	winner := session.Players[winnerID]

	return &ResultsView{
		Winner:    winnerID,
		Attempts:  winner.Attempts,
		TimeTaken: winner.elapsed(),
	}, nil
}

// finalize moves a player into the terminal completed state. The end time is
// recorded exactly once.
func finalize(p *PlayerProgress) {
	p.Completed = true
	if p.EndTime.IsZero() {
		p.EndTime = time.Now()
	}
}

// elapsed returns the time the player took from joining to completing.
func (p *PlayerProgress) elapsed() time.Duration {
	return p.EndTime.Sub(p.StartTime)
}

// hasWon returns true if the player has ever guessed the secret word.
func (s *Session) hasWon(p *PlayerProgress) bool {
	return lo.Contains(p.Guesses, s.Word)
}

// allCompleted returns true once every player carries the completed flag.
func (s *Session) allCompleted() bool {
	return lo.EveryBy(lo.Values(s.Players), func(p *PlayerProgress) bool {
		return p.Completed
	})
}

// allFinished returns true once every player has either found the word or
// burned through all attempts, whether or not their completed flag has been
// set yet.
func (s *Session) allFinished() bool {
	return lo.EveryBy(lo.Values(s.Players), func(p *PlayerProgress) bool {
		return s.hasWon(p) || p.Attempts >= MaxAttempts
	})
}
