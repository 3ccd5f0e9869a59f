// Package cli 是 profilegen 命令行入口：读取配置，生成各语言的 HTML 页面和 README，
// 并输出写了哪些文件。
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"profilegen/internal/build"
	"profilegen/internal/domain/config"
	domainerr "profilegen/internal/domain/errors"
)

const defaultConfigPath = "profile.yaml"

// ExitError 带上失败时的进程退出码
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// Execute 用 os.Args 执行命令，返回第一个致命错误
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "profilegen",
		Short:         "Generate the profile README and localized landing pages",
		Long:          `profilegen reads the project list and the localized static strings and writes one HTML page per language plus a Markdown profile README.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "configuration file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	return root
}

func run(ctx context.Context, configPath string) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalid) {
			return &ExitError{Code: 2, Err: err}
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("load config: %w", err)}
	}
	if _, statErr := os.Stat(configPath); statErr == nil {
		logger.Debug("using config", "path", configPath)
	} else {
		logger.Debug("no config file, using defaults", "path", configPath)
	}

	prog := newProgress(logger)
	b := build.Builder{Cfg: cfg, Logger: logger}
	res, err := b.Run(ctx)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	prog.done("done", "projects", res.Projects, "files", len(res.Artifacts), "warnings", len(res.Warnings))
	return nil
}
