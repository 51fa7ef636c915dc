package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/logger"
)

var (
	skipConfirm   bool
	cleanSessions bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove log files, and optionally all chats",
	Long: `Removes the sidechat log files from /tmp.

With --sessions it also deletes every chat and its history. It will prompt
for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanSessions, "sessions", false, "Also delete all chats and their history")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return runCleanWithReader(cfg, os.Stdin, cmd.OutOrStdout())
}

// runCleanWithReader allows injecting the config and terminal for testing
func runCleanWithReader(cfg *config.Config, input io.Reader, out io.Writer) error {
	sessions := cfg.GetSessions()
	if cleanSessions && len(sessions) > 0 {
		fmt.Fprintf(out, "This will delete %d chat(s) and remove all log files.\n", len(sessions))
	} else {
		fmt.Fprintln(out, "This will remove all log files in /tmp.")
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if cleanSessions {
		for _, sess := range sessions {
			if err := cfg.DeleteSessionMessages(sess.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: error removing history of %s: %v\n", sess.ID, err)
			}
		}
		cfg.ClearSessions()
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out, "Cleaned:")
	if cleanSessions {
		fmt.Fprintf(out, "  - %d chat(s) deleted\n", len(sessions))
	}
	fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
