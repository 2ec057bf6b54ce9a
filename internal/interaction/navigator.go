package interaction

import (
	"fmt"

	"github.com/pkg/browser"
)

// Navigator opens external links
type Navigator interface {
	Open(url string) error
}

// BrowserNavigator opens links in the system web browser
type BrowserNavigator struct{}

// Open launches the default browser on url
func (BrowserNavigator) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}
