//go:build !tinygo && !cgo

package hal

import "fmt"

func RunWindow(_ HostConfig, _ func(h HAL) func() error) error {
	return fmt.Errorf("window: %w without cgo", ErrNotImplemented)
}
