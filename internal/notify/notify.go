// Package notify shows desktop notifications for the native shell.
package notify

import (
	"sync"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"github.com/sing-config/sing-config/internal/i18n"
)

// SendFunc delivers one notification. beeep.Notify is used unless a test replaces it.
type SendFunc func(title, message string, icon any) error

// Notifier tells the user that the application keeps running in the tray. The notice is
// shown at most once per process.
type Notifier struct {
	logger  *zap.Logger
	enabled bool
	icon    []byte
	send    SendFunc

	once sync.Once
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithIcon sets the notification icon (PNG bytes).
func WithIcon(icon []byte) Option {
	return func(n *Notifier) { n.icon = icon }
}

// WithSender replaces the delivery function.
func WithSender(send SendFunc) Option {
	return func(n *Notifier) { n.send = send }
}

// New creates a notifier. A disabled notifier only logs.
func New(logger *zap.Logger, enabled bool, opts ...Option) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	beeep.AppName = i18n.AppName

	n := &Notifier{
		logger:  logger,
		enabled: enabled,
		send:    beeep.Notify,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WindowHidden is called whenever the window was hidden to the tray.
func (n *Notifier) WindowHidden(text i18n.Text) {
	if n == nil || !n.enabled {
		return
	}

	n.once.Do(func() {
		n.logger.Info("Tray notification",
			zap.String("title", text.StillRunningTitle),
			zap.String("message", text.StillRunningBody))

		var icon any = ""
		if len(n.icon) > 0 {
			icon = n.icon
		}
		if err := n.send(text.StillRunningTitle, text.StillRunningBody, icon); err != nil {
			n.logger.Debug("Failed to show notification", zap.Error(err))
		}
	})
}
