package gui

import (
	"errors"

	"github.com/ncruces/zenity"
)

// OpenTrajectoryDialog shows a native directory picker for a trajectory
// directory. Returns "" with a nil error when the user cancels.
func OpenTrajectoryDialog() (string, error) {
	dir, err := zenity.SelectFile(
		zenity.Title("Open Trajectory"),
		zenity.Directory(),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return dir, err
}
