package window

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Handle is the host window. Implementations may fail; the controller treats every call as
// best effort.
type Handle interface {
	Show() error
	Hide() error
	Focus() error
	SetTitle(title string) error
}

// CloseNotifier is implemented by handles that can report close requests. The callback
// returns true to keep the window open.
type CloseNotifier interface {
	OnCloseRequested(fn func() (prevent bool)) (unsubscribe func())
}

// Controller owns the visibility state of the main window. With no handle attached every
// operation is a silent no-op.
type Controller struct {
	mu     sync.RWMutex
	handle Handle
	state  State
	unsub  func()
	logger *zap.Logger

	onClose func() bool

	subscribers   []chan Transition
	subscribersMu sync.RWMutex
}

// NewController creates a controller that assumes the window starts visible.
func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		state:  StateVisible,
		logger: logger,
	}
}

// Attach binds the controller to a window. If the window reports close requests the
// controller subscribes for as long as the window stays attached; attaching a recreated
// window moves the subscription to it.
func (c *Controller) Attach(h Handle) {
	c.mu.Lock()
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
	c.handle = h
	if n, ok := h.(CloseNotifier); ok {
		c.unsub = n.OnCloseRequested(c.closeRequested)
	}
	intercepting := c.unsub != nil
	c.mu.Unlock()

	c.logger.Debug("Window attached", zap.Bool("close_interception", intercepting))
}

// OnClose replaces the default close handling (InterceptClose) for every window attached
// afterwards and the current one. The handler must keep the window alive by returning true.
func (c *Controller) OnClose(fn func() (prevent bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onClose = fn
}

func (c *Controller) closeRequested() bool {
	c.mu.RLock()
	fn := c.onClose
	c.mu.RUnlock()

	if fn != nil {
		return fn()
	}
	return c.InterceptClose()
}

// Detach forgets the window, for example when the host destroyed it.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
	c.handle = nil
}

// Attached reports whether a window handle is present.
func (c *Controller) Attached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.handle != nil
}

// State returns the last known visibility.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Show makes the window visible and gives it focus.
func (c *Controller) Show() {
	c.apply(EventShow)
}

// Hide hides the window to the tray.
func (c *Controller) Hide() {
	c.apply(EventHide)
}

// Toggle hides a visible window and shows a hidden one.
func (c *Controller) Toggle() {
	c.apply(EventToggle)
}

// InterceptClose turns a close request into a hide. It always returns true so the host keeps
// the window alive.
func (c *Controller) InterceptClose() bool {
	c.apply(EventInterceptedClose)
	return true
}

// SetTitle changes the window title. A missing window is not an error.
func (c *Controller) SetTitle(title string) {
	c.mu.RLock()
	h := c.handle
	c.mu.RUnlock()

	if h == nil {
		c.logger.Debug("No window to set title on", zap.String("title", title))
		return
	}
	if err := h.SetTitle(title); err != nil {
		c.logger.Debug("Failed to set window title", zap.Error(err))
	}
}

// Subscribe returns a channel receiving every visibility transition.
func (c *Controller) Subscribe() <-chan Transition {
	c.subscribersMu.Lock()
	defer c.subscribersMu.Unlock()

	ch := make(chan Transition, 10)
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Unsubscribe removes a channel returned by Subscribe and closes it. Unknown channels are
// ignored.
func (c *Controller) Unsubscribe(ch <-chan Transition) {
	c.subscribersMu.Lock()
	defer c.subscribersMu.Unlock()

	for i, sub := range c.subscribers {
		if sub == ch {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

func (c *Controller) apply(event Event) {
	c.mu.Lock()
	h := c.handle
	if h == nil {
		c.mu.Unlock()
		c.logger.Debug("No window attached, ignoring event", zap.String("event", string(event)))
		return
	}

	from := c.state
	to := Next(from, event)
	c.state = to
	c.mu.Unlock()

	switch to {
	case StateVisible:
		if err := h.Show(); err != nil {
			c.logger.Debug("Failed to show window", zap.Error(err))
		}
		if err := h.Focus(); err != nil {
			c.logger.Debug("Failed to focus window", zap.Error(err))
		}
	case StateHidden:
		if err := h.Hide(); err != nil {
			c.logger.Debug("Failed to hide window", zap.Error(err))
		}
	}

	if from != to {
		c.logger.Debug("Window visibility changed",
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.String("event", string(event)))
		c.notify(Transition{From: from, To: to, Event: event, Timestamp: time.Now()})
	}
}

func (c *Controller) notify(t Transition) {
	c.subscribersMu.RLock()
	defer c.subscribersMu.RUnlock()

	for _, ch := range c.subscribers {
		select {
		case ch <- t:
		default:
			c.logger.Warn("Transition channel full, dropping", zap.String("to", string(t.To)))
		}
	}
}
