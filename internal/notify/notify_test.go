package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sing-config/sing-config/internal/i18n"
)

type recorder struct {
	titles []string
	err    error
}

func (r *recorder) send(title, _ string, _ any) error {
	r.titles = append(r.titles, title)
	return r.err
}

func TestWindowHiddenNotifiesOnce(t *testing.T) {
	rec := &recorder{}
	n := New(zaptest.NewLogger(t), true, WithSender(rec.send))

	n.WindowHidden(i18n.For(i18n.English))
	n.WindowHidden(i18n.For(i18n.Chinese))

	require.Len(t, rec.titles, 1)
	assert.Equal(t, "sing-config is still running", rec.titles[0])
}

func TestDisabledNotifierIsSilent(t *testing.T) {
	rec := &recorder{}
	n := New(zaptest.NewLogger(t), false, WithSender(rec.send))

	n.WindowHidden(i18n.For(i18n.English))
	assert.Empty(t, rec.titles)

	var nilNotifier *Notifier
	assert.NotPanics(t, func() { nilNotifier.WindowHidden(i18n.For(i18n.English)) })
}

func TestSendErrorsAreIgnored(t *testing.T) {
	rec := &recorder{err: errors.New("no notification daemon")}
	n := New(zaptest.NewLogger(t), true, WithSender(rec.send), WithIcon([]byte{0x89, 'P', 'N', 'G'}))

	assert.NotPanics(t, func() { n.WindowHidden(i18n.For(i18n.Chinese)) })
	assert.Equal(t, []string{"sing-config 仍在运行"}, rec.titles)
}
