package ports

// LinkOpener hands a URL (https or mailto) to the OS's registered handler.
type LinkOpener interface {
	OpenURL(url string) error
}
