// Package session holds the view state behind the upload / transcribe /
// generate / copy flow and sequences the backend calls for it.
package session

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/app/script"
)

// Audio file extensions accepted by SelectFile.
var AllowedExtensions = []string{".mp3", ".wav", ".m4a", ".mp4", ".mpeg", ".mpga", ".webm"}

// Fallback messages shown when a failure carries no text of its own.
const (
	transcribeFailedMessage = "文字起こしに失敗しました"
	generateFailedMessage   = "スクリプト生成に失敗しました"
)

// DefaultCopiedDuration is how long the copied flag stays raised.
const DefaultCopiedDuration = 2 * time.Second

var (
	ErrNoFile          = errors.New("no file selected")
	ErrNoTranscription = errors.New("transcription is empty")
	ErrNoScript        = errors.New("no script generated")
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrSuperseded is returned when a newer request of the same action, or a
	// new file selection, replaced the one that just finished. Its result was
	// discarded.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// Backend performs the two network calls.
type Backend interface {
	Transcribe(ctx context.Context, audio provider.Audio) (string, error)
	GenerateScript(ctx context.Context, text string) (*script.Document, error)
}

// Clipboard receives the copy text.
type Clipboard interface {
	WriteText(text string) error
}

// Controller owns the view state. All methods are safe for concurrent use.
type Controller struct {
	backend      Backend
	logger       *zap.Logger
	summaryLabel string
	copiedFor    time.Duration
	afterFunc    func(time.Duration, func())

	mu            sync.Mutex
	file          *provider.Audio
	transcription string
	script        *script.Document
	transcribing  bool
	generating    bool
	errMessage    string
	copied        bool

	transcribeToken uint64
	generateToken   uint64
	copyToken       uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithSummaryLabel sets the summary heading used by Copy.
func WithSummaryLabel(label string) Option {
	return func(c *Controller) { c.summaryLabel = label }
}

// WithCopiedDuration sets how long the copied flag stays raised.
func WithCopiedDuration(d time.Duration) Option {
	return func(c *Controller) { c.copiedFor = d }
}

// WithAfterFunc replaces the timer used to lower the copied flag.
func WithAfterFunc(after func(time.Duration, func())) Option {
	return func(c *Controller) { c.afterFunc = after }
}

// NewController creates a controller in its initial empty state.
func NewController(backend Backend, opts ...Option) *Controller {
	c := &Controller{
		backend:      backend,
		logger:       zap.NewNop(),
		summaryLabel: script.DefaultSummaryLabel,
		copiedFor:    DefaultCopiedDuration,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SupportedFile reports whether name has an allowed audio extension.
func SupportedFile(name string) bool {
	return lo.Contains(AllowedExtensions, strings.ToLower(filepath.Ext(name)))
}

// SelectFile replaces the selected file and resets everything derived from
// the previous one. In-flight requests are superseded.
func (c *Controller) SelectFile(name string, data []byte) error {
	if !SupportedFile(name) {
		return ErrUnsupportedFile
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.file = &provider.Audio{Filename: name, Data: data}
	c.errMessage = ""
	c.transcription = ""
	c.script = nil
	c.transcribing = false
	c.generating = false
	c.transcribeToken++
	c.generateToken++

	c.logger.Debug("File selected", zap.String("filename", name), zap.Int("size", len(data)))
	return nil
}

// Transcribe sends the selected file to the backend. Only the most recently
// issued transcription applies its result.
func (c *Controller) Transcribe(ctx context.Context) error {
	c.mu.Lock()
	if c.file == nil {
		c.mu.Unlock()
		return ErrNoFile
	}
	c.transcribeToken++
	token := c.transcribeToken
	audio := *c.file
	c.transcribing = true
	c.errMessage = ""
	c.mu.Unlock()

	text, err := c.backend.Transcribe(ctx, audio)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.transcribeToken {
		c.logger.Debug("Discarding superseded transcription", zap.Uint64("token", token))
		return ErrSuperseded
	}
	c.transcribing = false
	if err != nil {
		c.errMessage = messageOf(err, transcribeFailedMessage)
		c.logger.Warn("Transcription failed", zap.Error(err))
		return err
	}
	c.transcription = text
	return nil
}

// GenerateScript sends the current transcription to the backend. Only the
// most recently issued generation applies its result.
func (c *Controller) GenerateScript(ctx context.Context) error {
	c.mu.Lock()
	if c.transcription == "" {
		c.mu.Unlock()
		return ErrNoTranscription
	}
	c.generateToken++
	token := c.generateToken
	text := c.transcription
	c.generating = true
	c.errMessage = ""
	c.mu.Unlock()

	doc, err := c.backend.GenerateScript(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.generateToken {
		c.logger.Debug("Discarding superseded script", zap.Uint64("token", token))
		return ErrSuperseded
	}
	c.generating = false
	if err != nil {
		c.errMessage = messageOf(err, generateFailedMessage)
		c.logger.Warn("Script generation failed", zap.Error(err))
		return err
	}
	c.script = doc
	return nil
}

// EditTranscription replaces the transcription text. The generated script,
// if any, is kept.
func (c *Controller) EditTranscription(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcription = text
}

// Copy writes the formatted script to clipboard and raises the copied flag
// for the configured duration. It returns the text written.
func (c *Controller) Copy(clipboard Clipboard) (string, error) {
	c.mu.Lock()
	if c.script == nil {
		c.mu.Unlock()
		return "", ErrNoScript
	}
	text := script.FormatText(c.script, c.summaryLabel)
	c.mu.Unlock()

	if err := clipboard.WriteText(text); err != nil {
		c.mu.Lock()
		c.errMessage = err.Error()
		c.mu.Unlock()
		return "", err
	}

	c.mu.Lock()
	c.copied = true
	c.copyToken++
	token := c.copyToken
	c.mu.Unlock()

	c.afterFunc(c.copiedFor, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.copyToken == token {
			c.copied = false
		}
	})
	return text, nil
}

// CanTranscribe mirrors the enabled state of the transcribe button.
func (c *Controller) CanTranscribe() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.file != nil && !c.transcribing
}

// CanGenerate mirrors the enabled state of the generate button.
func (c *Controller) CanGenerate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcription != "" && !c.generating
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Transcription: c.transcription,
		Script:        cloneDocument(c.script),
		Transcribing:  c.transcribing,
		Generating:    c.generating,
		Error:         c.errMessage,
		Copied:        c.copied,
	}
	if c.file != nil {
		s.FileName = c.file.Filename
		s.FileSize = len(c.file.Data)
	}
	return s
}

func messageOf(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
