package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ougotti/simplenotebook/client"
)

var (
	verbose    bool
	configPath string
	dataDir    string
	bearer     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Personal markdown notes over local files or a hosted API",
	Long: `Notebook stores short markdown notes either on this machine or in a
hosted notes API, depending on the runtime configuration. With no real
backend configured it runs entirely locally.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path or URL of the runtime config.json (default: local mode)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for local-mode data and drafts")
	rootCmd.PersistentFlags().StringVar(&bearer, "token", "", "Bearer token for remote mode (or NOTEBOOK_TOKEN)")
}

// newFacade builds the persistence façade from the persistent flags.
func newFacade() *client.Facade {
	var loader client.ConfigLoader
	switch {
	case strings.HasPrefix(configPath, "http://"), strings.HasPrefix(configPath, "https://"):
		loader = client.HTTPConfigLoader{URL: configPath}
	default:
		loader = client.FileConfigLoader{Path: configPath}
	}

	var opts []client.Option
	if dataDir != "" {
		opts = append(opts, client.WithDataDir(dataDir))
	}

	f := client.New(loader, opts...)
	if token := currentToken(); token != "" {
		f.SetBearerToken(token)
	}
	return f
}

func currentToken() string {
	if bearer != "" {
		return bearer
	}
	return os.Getenv("NOTEBOOK_TOKEN")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
