//go:build !ebiten

package app

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("window shell requires building with the 'ebiten' tag")

// RunWindow reports that the GUI build tag is missing.
func RunWindow(*Session, *log.Logger) error {
	return ErrNoWindow
}
