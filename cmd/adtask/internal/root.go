package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/autodiff/adtask/internal/env"
	"github.com/autodiff/adtask/internal/runner"
	"github.com/autodiff/adtask/internal/tasks"
	"github.com/autodiff/adtask/pkgs/platform"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	rootSourceDir string
	rootBuildDir  string
	rootEnvFile   string
	rootVerbose   bool
	rootEcho      bool
	rootDryRun    bool
)

// Resolved by the root command before any task runs.
var (
	profile = platform.Host()
	config  env.Config
	tasker  *tasks.Tasks
)

// newRunner builds the step runner; tests replace it.
var newRunner = func(shell platform.Shell, opts ...runner.Option) tasks.Runner {
	return runner.New(shell, opts...)
}

var rootCmd = &cobra.Command{
	Use:   "adtask",
	Short: "adtask runs the autodiff build tasks",
	Long: `adtask configures, builds, installs and tests autodiff with CMake.
It assumes the development environment is already active:
    conda devenv
    [source] activate autodiff`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupTasks,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootSourceDir, "source-dir", "", "autodiff source tree (default: working directory)")
	flags.StringVar(&rootBuildDir, "build-dir", "", "build directory (default: $"+env.BuildDirVar+")")
	flags.StringVar(&rootEnvFile, "env-file", ".env", "optional file of KEY=VALUE environment defaults")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&rootEcho, "echo", false, "print each command before running it")
	flags.BoolVar(&rootDryRun, "dry-run", false, "print commands without running them")
}

func setupTasks(cmd *cobra.Command, _ []string) error {
	if rootVerbose {
		log.SetOutputLevel(log.Ldebug)
	}
	if err := env.LoadDotenv(rootEnvFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", rootEnvFile, err)
	}
	cfg, err := env.Load(env.Options{
		GOOS:      profile.GOOS,
		SourceDir: rootSourceDir,
		BuildDir:  rootBuildDir,
	})
	if err != nil {
		return err
	}
	config = cfg

	r := newRunner(profile.Shell,
		runner.WithStdin(cmd.InOrStdin()),
		runner.WithStdout(cmd.OutOrStdout()),
		runner.WithStderr(cmd.ErrOrStderr()),
		runner.WithEcho(rootEcho),
		runner.WithDryRun(rootDryRun),
	)
	tasker = tasks.New(profile, config, r)
	return nil
}

// Execute runs the root command and returns the process exit status. A
// failing external tool has already printed its diagnostics, so only its
// status is forwarded.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	var exitErr *runner.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "adtask:", err)
	}
	return runner.ExitCode(err)
}
