package port

import "context"

// OutputStore persists annotated images under a file name.
type OutputStore interface {
	// Save writes data under name, replacing any existing file
	Save(ctx context.Context, name string, data []byte) error
}
