package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier used to tag a game in the logs
func GenerateGameID() string {
	return uuid.NewString()
}

// ShortID trims an ID down to something readable on a status line
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
