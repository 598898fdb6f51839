package runner

import (
	"os/exec"
	"syscall"

	"github.com/autodiff/adtask/pkgs/platform"
	"golang.org/x/sys/windows"
)

// cmd.exe does its own parsing of the /C argument, so the line is passed
// through verbatim instead of being re-quoted by os/exec.
func setCmdLine(cmd *exec.Cmd, shell platform.Shell, line string) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: windows.EscapeArg(shell.Path) + " " + shell.Flag + " " + line,
	}
}
