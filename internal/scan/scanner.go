package scan

import (
	"errors"
	"sync"
)

var (
	ErrAlreadyActive = errors.New("scanner already active")
	ErrNoDevice      = errors.New("no camera device available")
)

// DeviceInfo describes one video input.
type DeviceInfo struct {
	ID    string
	Label string
}

// Device is the camera decode loop: started against a viewport element,
// it yields decoded text until stopped. Implementations wrap the actual
// camera API; tests use a fake.
type Device interface {
	Start(viewport string, onDecode func(text string)) error
	Stop() error
}

// Enumerator lists available video inputs.
type Enumerator interface {
	Devices() ([]DeviceInfo, error)
}

// Controller owns the one exclusive camera stream. The contract is
// acquire-on-start, release-on-stop-or-teardown, no double-acquire; mode
// switches and the manual-entry toggle go through Stop so the stream is
// released deterministically.
type Controller struct {
	mu     sync.Mutex
	dev    Device
	active bool
}

func NewController(dev Device) *Controller {
	return &Controller{dev: dev}
}

func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Controller) Start(viewport string, onDecode func(text string)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dev == nil {
		return ErrNoDevice
	}
	if c.active {
		return ErrAlreadyActive
	}
	if err := c.dev.Start(viewport, onDecode); err != nil {
		return err
	}
	c.active = true
	return nil
}

// Stop releases the stream. Idempotent: teardown paths call it without
// knowing whether a scan was running.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return nil
	}
	c.active = false
	return c.dev.Stop()
}
