package main

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"os"
	"strings"

	"github.com/samber/lo"
)

// checkGuess compares a guess to the target word and returns per-letter results.
//
// Two passes: exact-position matches are locked in first and their target
// letters cleared, then remaining guess letters consume the leftmost matching
// target letter or are marked absent. A single pass would over-count
// duplicated letters.
func checkGuess(guess, target string) ([]GuessResult, error) {
	if len(guess) != WordLength || len(target) != WordLength {
		return nil, ErrInvalidGuess
	}

	result := make([]GuessResult, WordLength)
	targetCopy := []rune(target)

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			result[i] = GuessResult{Letter: string(guess[i]), Status: GuessStatusCorrect}
			targetCopy[i] = ' '
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i].Status == "" {
			result[i].Letter = string(guess[i])

			found := false
			for j := 0; j < WordLength; j++ {
				if targetCopy[j] == rune(guess[i]) {
					result[i].Status = GuessStatusPresent
					targetCopy[j] = ' '
					found = true
					break
				}
			}

			if !found {
				result[i].Status = GuessStatusAbsent
			}
		}
	}

	return result, nil
}

// normalizeGuess trims and lowercases a guess string for comparison.
func normalizeGuess(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// isAlpha returns true if the string consists only of letters a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// getRandomWord returns a random secret word from the loaded word pool.
func (app *App) getRandomWord() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(app.WordList))))
	if err != nil {
		logWarn("Error generating random number: %v, using fallback", err)
		return app.WordList[0]
	}
	return app.WordList[n.Int64()]
}

// loadWords reads the secret word pool from a JSON file. Entries that are not
// exactly 5 lowercase letters are dropped with a warning so a bad list entry
// can never produce an unwinnable game.
func loadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wl WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, err
	}
	words := lo.FilterMap(wl.Words, func(w string, _ int) (string, bool) {
		w = normalizeGuess(w)
		if len(w) != WordLength || !isAlpha(w) {
			logWarn("Skipping word %q: not %d letters", w, WordLength)
			return "", false
		}
		return w, true
	})
	return words, nil
}
