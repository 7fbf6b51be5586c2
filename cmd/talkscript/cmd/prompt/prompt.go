package prompt

import (
	"fmt"

	"github.com/spf13/cobra"
	"talkscript/internal/config"
)

var configPath string

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings file (default "+config.DefaultSettingsPath+" if present)")
}

// Cmd represents the prompt command
var Cmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the effective system prompt",
	Long: `Print the system prompt sent with every script generation request,
after applying the settings file and TALKSCRIPT_SYSTEM_PROMPT_FILE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), settings.Script.SystemPrompt)
		return nil
	},
}
