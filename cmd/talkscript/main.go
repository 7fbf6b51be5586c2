// @title Talkscript API
// @version 1.0
// @description Transcribes uploaded audio and turns the transcription into a structured talk script.
// @BasePath /api
package main

import (
	"fmt"
	"os"

	"talkscript/cmd/talkscript/cmd"
	"talkscript/internal/config"
)

func main() {
	// A missing .env is fine; keys may come from the real environment
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
