package session

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/app/script"
)

// fakeBackend answers transcriptions from a per-filename channel, or from a
// per-call channel when perCall is set, so tests control completion order.
type fakeBackend struct {
	mu          sync.Mutex
	perCall     bool
	calls       []chan result
	transcripts map[string]chan result
	scripts     chan scriptResult
	transcribed []string
	generated   []string
}

type result struct {
	text string
	err  error
}

type scriptResult struct {
	doc *script.Document
	err error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		transcripts: make(map[string]chan result),
		scripts:     make(chan scriptResult, 4),
	}
}

func (f *fakeBackend) reply(filename string) chan result {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.transcripts[filename]
	if !ok {
		ch = make(chan result, 1)
		f.transcripts[filename] = ch
	}
	return ch
}

func (f *fakeBackend) Transcribe(ctx context.Context, audio provider.Audio) (string, error) {
	ch := f.reply(audio.Filename)
	f.mu.Lock()
	if f.perCall {
		ch = make(chan result, 1)
		f.calls = append(f.calls, ch)
	}
	f.transcribed = append(f.transcribed, audio.Filename)
	f.mu.Unlock()
	select {
	case r := <-ch:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (f *fakeBackend) GenerateScript(ctx context.Context, text string) (*script.Document, error) {
	f.mu.Lock()
	f.generated = append(f.generated, text)
	f.mu.Unlock()
	select {
	case r := <-f.scripts:
		return r.doc, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func sampleDoc() *script.Document {
	ts := "00:00"
	return &script.Document{
		Title:   "会議",
		Summary: "予算の話",
		Sections: []script.Section{
			{Heading: "導入", Points: []string{"目的"}, Timestamp: &ts},
			{Heading: "予算", Points: []string{"案", "削減"}},
		},
	}
}

// manualTimer captures the copied-flag callback so tests fire it explicitly.
type manualTimer struct {
	mu    sync.Mutex
	fns   []func()
	delay time.Duration
}

func (m *manualTimer) after(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
	m.fns = append(m.fns, f)
}

func (m *manualTimer) fire(i int) {
	m.mu.Lock()
	f := m.fns[i]
	m.mu.Unlock()
	f()
}

func TestSupportedFile(t *testing.T) {
	for _, name := range []string{"a.mp3", "b.WAV", "c.m4a", "d.mp4", "e.mpeg", "f.mpga", "g.webm"} {
		assert.True(t, SupportedFile(name), name)
	}
	for _, name := range []string{"a.txt", "b", "c.mp3.exe", "flac.flac"} {
		assert.False(t, SupportedFile(name), name)
	}
}

func TestController_InitialState(t *testing.T) {
	c := NewController(newFakeBackend())
	s := c.Snapshot()

	assert.False(t, s.HasFile())
	assert.Empty(t, s.Transcription)
	assert.Nil(t, s.Script)
	assert.False(t, s.HasError())
	assert.False(t, c.CanTranscribe())
	assert.False(t, c.CanGenerate())

	assert.ErrorIs(t, c.Transcribe(context.Background()), ErrNoFile)
	assert.ErrorIs(t, c.GenerateScript(context.Background()), ErrNoTranscription)
	_, err := c.Copy(WriterClipboard{W: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrNoScript)
}

func TestController_SelectFileRejectsUnsupported(t *testing.T) {
	c := NewController(newFakeBackend())
	assert.ErrorIs(t, c.SelectFile("notes.txt", []byte("x")), ErrUnsupportedFile)
	assert.False(t, c.Snapshot().HasFile())
}

func TestController_FullFlow(t *testing.T) {
	backend := newFakeBackend()
	timer := &manualTimer{}
	c := NewController(backend, WithAfterFunc(timer.after))
	ctx := context.Background()

	require.NoError(t, c.SelectFile("meeting.mp3", []byte("audio")))
	assert.True(t, c.CanTranscribe())

	backend.reply("meeting.mp3") <- result{text: "今日は会議の議事録です。"}
	require.NoError(t, c.Transcribe(ctx))
	assert.Equal(t, "今日は会議の議事録です。", c.Snapshot().Transcription)
	assert.True(t, c.CanGenerate())

	backend.scripts <- scriptResult{doc: sampleDoc()}
	require.NoError(t, c.GenerateScript(ctx))
	require.NotNil(t, c.Snapshot().Script)
	assert.Equal(t, []string{"今日は会議の議事録です。"}, backend.generated)

	out := &bytes.Buffer{}
	text, err := c.Copy(WriterClipboard{W: out})
	require.NoError(t, err)
	assert.Equal(t, "# 会議\n\n## 要約\n予算の話\n\n## 導入 (00:00)\n- 目的\n\n## 予算\n- 案\n- 削減", text)
	assert.Equal(t, text+"\n", out.String())
	assert.True(t, c.Snapshot().Copied)
	assert.Equal(t, DefaultCopiedDuration, timer.delay)

	timer.fire(0)
	assert.False(t, c.Snapshot().Copied)
}

func TestController_CopiedFlagRestartsOnSecondCopy(t *testing.T) {
	backend := newFakeBackend()
	timer := &manualTimer{}
	c := NewController(backend, WithAfterFunc(timer.after))
	require.NoError(t, c.SelectFile("a.mp3", nil))
	backend.reply("a.mp3") <- result{text: "t"}
	require.NoError(t, c.Transcribe(context.Background()))
	backend.scripts <- scriptResult{doc: sampleDoc()}
	require.NoError(t, c.GenerateScript(context.Background()))

	clip := WriterClipboard{W: &bytes.Buffer{}}
	_, err := c.Copy(clip)
	require.NoError(t, err)
	_, err = c.Copy(clip)
	require.NoError(t, err)

	timer.fire(0)
	assert.True(t, c.Snapshot().Copied, "stale timer must not lower a newer flag")
	timer.fire(1)
	assert.False(t, c.Snapshot().Copied)
}

func TestController_FailureSetsErrorAndReenables(t *testing.T) {
	backend := newFakeBackend()
	c := NewController(backend)
	require.NoError(t, c.SelectFile("a.mp3", nil))

	backend.reply("a.mp3") <- result{err: errors.New("invalid file format")}
	assert.Error(t, c.Transcribe(context.Background()))

	s := c.Snapshot()
	assert.Equal(t, "invalid file format", s.Error)
	assert.False(t, s.Transcribing)
	assert.True(t, c.CanTranscribe())

	// a new action clears the banner
	backend.reply("a.mp3") <- result{text: "ok"}
	require.NoError(t, c.Transcribe(context.Background()))
	assert.False(t, c.Snapshot().HasError())
}

func TestController_EmptyErrorMessageFallsBack(t *testing.T) {
	backend := newFakeBackend()
	c := NewController(backend)
	require.NoError(t, c.SelectFile("a.mp3", nil))
	c.EditTranscription("text")

	backend.scripts <- scriptResult{err: errors.New("")}
	assert.Error(t, c.GenerateScript(context.Background()))
	assert.Equal(t, generateFailedMessage, c.Snapshot().Error)
}

func TestController_SelectFileResets(t *testing.T) {
	backend := newFakeBackend()
	c := NewController(backend)
	require.NoError(t, c.SelectFile("a.mp3", nil))
	backend.reply("a.mp3") <- result{text: "first"}
	require.NoError(t, c.Transcribe(context.Background()))
	backend.scripts <- scriptResult{doc: sampleDoc()}
	require.NoError(t, c.GenerateScript(context.Background()))

	require.NoError(t, c.SelectFile("b.wav", nil))
	s := c.Snapshot()
	assert.Equal(t, "b.wav", s.FileName)
	assert.Empty(t, s.Transcription)
	assert.Nil(t, s.Script)

	// reset is idempotent
	require.NoError(t, c.SelectFile("b.wav", nil))
	assert.Equal(t, s, c.Snapshot())
}

func TestController_EditKeepsScript(t *testing.T) {
	backend := newFakeBackend()
	c := NewController(backend)
	require.NoError(t, c.SelectFile("a.mp3", nil))
	c.EditTranscription("edited")
	backend.scripts <- scriptResult{doc: sampleDoc()}
	require.NoError(t, c.GenerateScript(context.Background()))

	c.EditTranscription("edited again")
	s := c.Snapshot()
	assert.Equal(t, "edited again", s.Transcription)
	assert.NotNil(t, s.Script)

	c.EditTranscription("")
	assert.False(t, c.CanGenerate())
}

func TestController_SnapshotIsACopy(t *testing.T) {
	backend := newFakeBackend()
	c := NewController(backend)
	require.NoError(t, c.SelectFile("a.mp3", nil))
	c.EditTranscription("x")
	backend.scripts <- scriptResult{doc: sampleDoc()}
	require.NoError(t, c.GenerateScript(context.Background()))

	s := c.Snapshot()
	s.Script.Title = "changed"
	s.Script.Sections[0].Points[0] = "changed"
	*s.Script.Sections[0].Timestamp = "99:99"

	fresh := c.Snapshot()
	assert.Equal(t, "会議", fresh.Script.Title)
	assert.Equal(t, "目的", fresh.Script.Sections[0].Points[0])
	assert.Equal(t, "00:00", *fresh.Script.Sections[0].Timestamp)
}

func waitForCalls(t *testing.T, backend *fakeBackend, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		return len(backend.transcribed) >= n
	}, time.Second, time.Millisecond)
}

func TestController_LatestTranscriptionWins(t *testing.T) {
	tests := []struct {
		name       string
		olderFirst bool
	}{
		{name: "older response arrives first", olderFirst: true},
		{name: "older response arrives last", olderFirst: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			backend.perCall = true
			c := NewController(backend)
			require.NoError(t, c.SelectFile("a.mp3", nil))

			older := make(chan error, 1)
			newer := make(chan error, 1)
			go func() { older <- c.Transcribe(context.Background()) }()
			waitForCalls(t, backend, 1)
			go func() { newer <- c.Transcribe(context.Background()) }()
			waitForCalls(t, backend, 2)

			backend.mu.Lock()
			olderReply, newerReply := backend.calls[0], backend.calls[1]
			backend.mu.Unlock()

			if tt.olderFirst {
				olderReply <- result{text: "stale"}
				assert.ErrorIs(t, <-older, ErrSuperseded)
				assert.True(t, c.Snapshot().Transcribing)
				newerReply <- result{text: "latest"}
				assert.NoError(t, <-newer)
			} else {
				newerReply <- result{text: "latest"}
				assert.NoError(t, <-newer)
				olderReply <- result{text: "stale"}
				assert.ErrorIs(t, <-older, ErrSuperseded)
			}

			s := c.Snapshot()
			assert.Equal(t, "latest", s.Transcription)
			assert.False(t, s.Transcribing)
		})
	}
}

func TestController_NewFileSupersedesInFlight(t *testing.T) {
	backend := newFakeBackend()
	c := NewController(backend)
	require.NoError(t, c.SelectFile("old.mp3", nil))

	errs := make(chan error, 1)
	go func() { errs <- c.Transcribe(context.Background()) }()
	waitForCalls(t, backend, 1)

	require.NoError(t, c.SelectFile("new.mp3", nil))
	backend.reply("old.mp3") <- result{text: "from old file"}

	assert.ErrorIs(t, <-errs, ErrSuperseded)
	s := c.Snapshot()
	assert.Equal(t, "new.mp3", s.FileName)
	assert.Empty(t, s.Transcription)
	assert.False(t, s.Transcribing)
}
