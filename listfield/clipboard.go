package listfield

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("listfield: clipboard unsupported")

// Clipboard provides paste support.
//
// Read failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
}

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", errClipboardUnsupported
	}
	return clipboard.ReadAll()
}
