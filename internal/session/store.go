// Package session keeps the one pending link per user that waits for a
// format choice.
package session

import "github.com/ytget/yt-downloader-bot/internal/model"

// Store maps a user to the single link that user has submitted.
// Operations on the same user are linearizable.
type Store interface {
	// Put stores url for userID, replacing any previous session.
	Put(userID int64, url string)

	// Take reads and removes the session in one step.
	Take(userID int64) (*model.Session, bool)

	// Discard removes the session if present.
	Discard(userID int64)
}
