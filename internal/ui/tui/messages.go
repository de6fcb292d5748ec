package tui

// fileLoadedMsg delivers the bytes of a picked file back to the update loop.
// An empty path choice arrives as data=nil, err=nil and is a no-op.
type fileLoadedMsg struct {
	path string
	data []byte
	err  error
}

type fileSavedMsg struct {
	path string
	err  error
}

type linkOpenedMsg struct {
	url string
	err error
}
