// Package catch renders invocations of the Catch2 test binary produced by
// the build.
package catch

import (
	"fmt"

	"github.com/autodiff/adtask/pkgs/buildsys"
	"github.com/autodiff/adtask/pkgs/platform"
)

// Binary is the name of the test executable target.
const Binary = "tests"

// Executable returns where the build places the test binary. Multi-config
// generators on Windows nest it under the configuration name.
func Executable(p platform.Profile, buildDir, config string) string {
	if p.Windows() {
		return p.Join(buildDir, "test", config, p.Exe(Binary))
	}
	return p.Join(buildDir, "test", Binary)
}

// TestStep renders a run of the whole suite with compact reporting.
func TestStep(p platform.Profile, buildDir, config string) buildsys.Step {
	line := buildsys.StripAndJoin(fmt.Sprintf(`
		%s
			--success
			--reporter compact
	`, Executable(p, buildDir, config)))
	return buildsys.Step{Name: "tests", Line: line}
}
