package ports

// FileReader returns the bytes of a user-chosen file. Implementations may
// block on user pacing; callers run them off the interactive loop.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}
