package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_Disabled(t *testing.T) {
	m := NewManager(Config{Enabled: false})
	step := m.Start("Transcribing")
	assert.False(t, step.enabled)

	// no-ops
	step.Done(nil)
	step.Done(errors.New("boom"))
	m.Wait()
}

func TestManager_Steps(t *testing.T) {
	var out bytes.Buffer
	m := NewManager(Config{Enabled: true, Writer: &out})

	ok := m.Start("Transcribing")
	failed := m.Start("Generating script")
	ok.Done(nil)
	failed.Done(errors.New("provider down"))
	m.Wait()

	assert.Contains(t, out.String(), "Transcribing")
	assert.Contains(t, out.String(), "Generating script")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.True(t, ShouldShowProgress(true))
}
