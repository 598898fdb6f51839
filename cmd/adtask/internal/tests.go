package internal

import (
	"github.com/autodiff/adtask/pkgs/buildsys/cmake"
	"github.com/spf13/cobra"
)

var testsConfig string

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Run the autodiff Catch2 test suite",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tasker.Tests(cmd.Context(), testsConfig)
	},
}

func init() {
	testsCmd.Flags().StringVar(&testsConfig, "config", cmake.DefaultConfig, "build configuration to test")
	rootCmd.AddCommand(testsCmd)
}
