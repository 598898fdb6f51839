package internal

import (
	"github.com/autodiff/adtask/internal/tasks"
	"github.com/autodiff/adtask/pkgs/buildsys/cmake"
	"github.com/spf13/cobra"
)

var compileOpts tasks.CompileOptions

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Configure, build and install autodiff",
	Long: `Compile runs the CMake configure step and builds the install target
(with Ninja, or Visual Studio on Windows) in the build directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tasker.Compile(cmd.Context(), compileOpts)
	},
}

func init() {
	flags := compileCmd.Flags()
	flags.BoolVar(&compileOpts.Clean, "clean", false, "remove the build directory first")
	flags.StringVar(&compileOpts.Config, "config", cmake.DefaultConfig, "build configuration")
	flags.IntVar(&compileOpts.Jobs, "number-of-jobs", -1, "parallel jobs, below 1 lets the build tool decide")
	flags.BoolVar(&compileOpts.GenWrappers, "gen-wrappers", false, "generate conda wrappers after installing")
	flags.StringArrayVarP(&compileOpts.Defines, "define", "D", nil, "extra CMake cache entry, KEY=VALUE or KEY:TYPE=VALUE (repeatable)")
	rootCmd.AddCommand(compileCmd)
}
