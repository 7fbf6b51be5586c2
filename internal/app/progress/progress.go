// Package progress shows terminal spinners for long-running CLI steps.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
}

type Manager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// Step is one spinner line. A disabled Step is a no-op.
type Step struct {
	bar     *mpb.Bar
	enabled bool
}

func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithAutoRefresh(),
	)

	return &Manager{
		container: container,
		enabled:   true,
	}
}

// Start adds a spinner labelled description that runs until Done.
func (m *Manager) Start(description string) *Step {
	if !m.enabled || m.container == nil {
		return &Step{enabled: false}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bar := m.container.New(0, mpb.SpinnerStyle(),
		mpb.BarFillerClearOnComplete(),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnAbort(
				decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace), "✓"),
				"✗",
			),
		),
	)

	return &Step{bar: bar, enabled: true}
}

// Done stops the spinner, marking it failed when err is non-nil.
func (s *Step) Done(err error) {
	if !s.enabled || s.bar == nil {
		return
	}
	if err != nil {
		s.bar.Abort(false)
		return
	}
	s.bar.SetTotal(-1, true)
}

func (m *Manager) Wait() {
	if m.enabled && m.container != nil {
		m.container.Wait()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}
