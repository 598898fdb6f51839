package internal

import (
	"github.com/autodiff/adtask/pkgs/buildsys/cmake"
	"github.com/spf13/cobra"
)

var (
	msvcClean  bool
	msvcConfig string
)

var msvcCmd = &cobra.Command{
	Use:   "msvc",
	Short: "Generate a Visual Studio solution under <build dir>/msvc",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tasker.MSVC(cmd.Context(), msvcClean, msvcConfig)
	},
}

func init() {
	msvcCmd.Flags().BoolVar(&msvcClean, "clean", false, "remove the solution directory first")
	msvcCmd.Flags().StringVar(&msvcConfig, "config", cmake.DefaultConfig, "build configuration")
	if profile.Windows() {
		rootCmd.AddCommand(msvcCmd)
	}
}
