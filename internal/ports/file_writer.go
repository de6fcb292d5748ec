package ports

// FileWriter accepts bytes for a user-chosen save location.
type FileWriter interface {
	WriteFile(path string, data []byte) error
}
