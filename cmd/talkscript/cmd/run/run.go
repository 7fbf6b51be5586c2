package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"talkscript/internal/app"
	"talkscript/internal/app/client"
	"talkscript/internal/app/logging"
	"talkscript/internal/app/progress"
	"talkscript/internal/app/session"
	"talkscript/internal/config"
)

var (
	configPath     string
	serverURL      string
	outPath        string
	transcriptPath string
	showProgress   bool
	verbose        bool
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings file, used when --server is empty")
	Cmd.Flags().StringVarP(&serverURL, "server", "s", "", "talkscript server URL; empty runs the providers in process")
	Cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the script text to this file instead of stdout")
	Cmd.Flags().StringVar(&transcriptPath, "transcript", "", "also write the transcription to this file")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "force the spinner even when stderr is not a terminal")
	Cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "verbose logging")
}

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run <audio-file>",
	Short: "Transcribe an audio file and generate its talk script",
	Long: `Transcribe an audio file and generate its talk script.

- Select the file (mp3, wav, m4a, mp4, mpeg, mpga, webm)
- Transcribe it, then generate the script from the transcription
- Print the copy text, or write it to --out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		settings, err := config.LoadSettings(configPath)
		if err != nil {
			return err
		}

		logger := zap.NewNop()
		if verbose {
			if logger, err = logging.NewLogger(true); err != nil {
				return err
			}
		}

		backend, err := newBackend(settings, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		controller := session.NewController(backend,
			session.WithLogger(logger),
			session.WithSummaryLabel(settings.Script.SummaryLabel),
			session.WithAfterFunc(func(_ time.Duration, _ func()) {}),
		)
		return Execute(ctx, controller, args[0], transcriptPath, out, progress.NewManager(progress.Config{
			Enabled: progress.ShouldShowProgress(showProgress),
			Writer:  cmd.ErrOrStderr(),
		}))
	},
}

func newBackend(settings *config.Settings, logger *zap.Logger) (session.Backend, error) {
	if serverURL != "" {
		return client.NewHTTPBackend(serverURL, nil), nil
	}
	return app.InitializeLocalBackend(settings, config.GetAPIKeys(), logger)
}

// Execute drives the controller through select, transcribe, generate and
// copy, writing the copy text to out. A non-empty transcriptPath also
// receives the transcription.
func Execute(ctx context.Context, controller *session.Controller, audioPath, transcriptPath string, out io.Writer, pm *progress.Manager) error {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return fmt.Errorf("failed to read audio file: %w", err)
	}
	if err := controller.SelectFile(filepath.Base(audioPath), data); err != nil {
		return fmt.Errorf("%s: %w", audioPath, err)
	}

	step := pm.Start("Transcribing")
	err = controller.Transcribe(ctx)
	step.Done(err)
	if err != nil {
		pm.Wait()
		return fmt.Errorf("transcription failed: %w", err)
	}

	if transcriptPath != "" {
		if err := os.WriteFile(transcriptPath, []byte(controller.Snapshot().Transcription), 0o644); err != nil {
			pm.Wait()
			return fmt.Errorf("failed to write transcript: %w", err)
		}
	}

	step = pm.Start("Generating script")
	err = controller.GenerateScript(ctx)
	step.Done(err)
	pm.Wait()
	if err != nil {
		return fmt.Errorf("script generation failed: %w", err)
	}

	_, err = controller.Copy(session.WriterClipboard{W: out})
	return err
}
