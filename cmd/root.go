package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/sidechat/internal/app"
	"github.com/zhubert/sidechat/internal/changelog"
	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "sidechat",
	Short: "Terminal chat client with a resizable sidebar",
	Long: `Sidechat is a terminal chat client. Chats are listed in a sidebar that can be
dragged wider or narrower with the mouse, collapsed to an icon strip with a
click, and switched from anywhere with Alt+Up/Down.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.sidechat/config.json)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("sidechat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("sidechat %s\n", version)
}

// loadConfig reads the config named by --config, or the default one
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app. It reads the last seen version for What's New.
	m := app.New(cfg, version)
	defer m.Close()

	if changelog.IsRelease(version) && cfg.GetLastSeenVersion() != version {
		logger.WithComponent("cmd").Info("new version", "previous", cfg.GetLastSeenVersion(), "version", version)
		cfg.SetLastSeenVersion(version)
		if err := cfg.Save(); err != nil {
			logger.WithComponent("cmd").Warn("failed to record version", "error", err)
		}
	}

	p := tea.NewProgram(m)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := config.Watch(ctx, cfg.Path(), func() {
		p.Send(app.ConfigFileChangedMsg{})
	}); err != nil {
		// The app still works without live reload
		logger.WithComponent("cmd").Warn("config watcher not started", "error", err)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
