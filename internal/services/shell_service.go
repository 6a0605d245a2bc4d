package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	goruntime "runtime"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// DirectoryDialog opens a native directory picker. An empty path with a nil
// error means the user cancelled.
type DirectoryDialog interface {
	Choose(ctx context.Context, title string) (string, error)
}

// Shell asks the host OS to open a file-manager window at a directory.
type Shell interface {
	OpenPath(path string) error
}

type wailsDirectoryDialog struct{}

func NewDirectoryDialog() DirectoryDialog {
	return wailsDirectoryDialog{}
}

func (wailsDirectoryDialog) Choose(ctx context.Context, title string) (string, error) {
	return runtime.OpenDirectoryDialog(ctx, runtime.OpenDialogOptions{
		Title: title,
	})
}

type osShell struct{}

func NewShell() Shell {
	return osShell{}
}

func (osShell) OpenPath(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	case err != nil:
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrValidation, path)
	}

	var cmd *exec.Cmd
	switch goruntime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
