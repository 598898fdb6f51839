//go:build !windows

package runner

import (
	"os/exec"

	"github.com/autodiff/adtask/pkgs/platform"
)

func setCmdLine(*exec.Cmd, platform.Shell, string) {}
