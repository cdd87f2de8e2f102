package git

import "time"

// Commit holds the metadata of a single commit.
type Commit struct {
	// Hash is the full SHA-1 hash of the commit
	Hash string

	// ShortHash is the abbreviated hash for display
	ShortHash string

	Author     string
	AuthorDate time.Time

	// Subject is the first line of the commit message
	Subject string
}

// String returns a human-readable representation of the commit.
func (c Commit) String() string {
	return c.ShortHash + " " + c.Subject
}
