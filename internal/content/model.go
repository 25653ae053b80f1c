package content

import "time"

// Content is a saved link or note owned by a single user.
type Content struct {
	ID          string
	AuthorID    string
	Content     string
	ContentType string
	CreatedAt   time.Time
}
