// Package cmd implements the fmtrun command line interface.
package cmd

import (
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fmtrun/fmtrun/pkg/config"
	"github.com/fmtrun/fmtrun/pkg/format"
	"github.com/fmtrun/fmtrun/pkg/toolchain"
)

var (
	toolFlag       string
	searchPathFlag []string
	configFlag     string
	logsLevelFlag  string
)

// RootCmd is the fmtrun root command.
var RootCmd = &cobra.Command{
	Use:   "fmtrun <file>",
	Short: "Format a source file with the toolchain's formatter",
	Long: `fmtrun resolves the configured formatting tool on the host toolchain,
runs it against the target file, and exits with the tool's own exit code
when formatting fails. The tool rewrites the file in place.`,
	Example:       "fmtrun main.go",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if toolFlag != "" {
		cfg.Tool = toolFlag
	}
	if len(searchPathFlag) > 0 {
		cfg.SearchPaths = append(searchPathFlag, cfg.SearchPaths...)
	}
	if logsLevelFlag != "" {
		cfg.Logs.Level = logsLevelFlag
	}
	if lvl, err := log.ParseLevel(cfg.Logs.Level); err == nil {
		log.SetLevel(lvl)
	}

	invoker := &format.Invoker{
		Tool:    cfg.Tool,
		Locator: &toolchain.PathLocator{ExtraDirs: cfg.SearchPaths},
	}

	target := args[0]
	if err := invoker.FormatFile(target); err != nil {
		return err
	}
	log.Debug("formatted", "file", target, "tool", cfg.Tool)
	return nil
}

func init() {
	RootCmd.Flags().StringVar(&toolFlag, "tool", "", "Formatting tool to resolve on the toolchain (default from config, then "+format.DefaultTool+")")
	RootCmd.Flags().StringSliceVar(&searchPathFlag, "search-path", nil, "Extra directory searched for the tool before the toolchain directories (repeatable)")
	RootCmd.Flags().StringVar(&configFlag, "config", "", "Path to a fmtrun config file")
	RootCmd.Flags().StringVar(&logsLevelFlag, "logs-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
