package pkg

import "github.com/google/uuid"

// GenerateGameID returns a random id for a new game.
func GenerateGameID() string {
	return uuid.NewString()
}
