package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"talkscript/cmd/talkscript/cmd/prompt"
	"talkscript/cmd/talkscript/cmd/run"
	"talkscript/cmd/talkscript/cmd/serve"
	"talkscript/cmd/talkscript/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "talkscript",
	Short: "Turn recorded audio into a transcription and a structured talk script",
	Long: `Turn recorded audio into a transcription and a structured talk script.
- serve: run the HTTP API and browser UI
- run: transcribe a file and generate its script from the terminal
- prompt: print the instruction sent to the chat model`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(prompt.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
