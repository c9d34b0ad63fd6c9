package clipboard

import (
	"github.com/atotto/clipboard"
	domainClipboard "github.com/t-kuni/acora/domain/system/clipboard"
)

type Clipboard struct{}

func NewClipboard() domainClipboard.IClipboard {
	return &Clipboard{}
}

func (c *Clipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
