// Package tasks composes directory preparation and command rendering into
// the operations exposed on the command line.
package tasks

import (
	"context"

	"github.com/autodiff/adtask/internal/builddir"
	"github.com/autodiff/adtask/internal/env"
	"github.com/autodiff/adtask/pkgs/buildsys"
	"github.com/autodiff/adtask/pkgs/buildsys/catch"
	"github.com/autodiff/adtask/pkgs/buildsys/cmake"
	"github.com/autodiff/adtask/pkgs/buildsys/wrappers"
	"github.com/autodiff/adtask/pkgs/platform"
	"github.com/qiniu/x/log"
)

// Runner executes an ordered list of steps, stopping at the first failure.
type Runner interface {
	Run(ctx context.Context, steps ...buildsys.Step) error
}

// Tasks dispatches the build operations for one resolved configuration.
type Tasks struct {
	profile platform.Profile
	config  env.Config
	runner  Runner
}

// New returns a dispatcher bound to profile, config and runner.
func New(profile platform.Profile, config env.Config, runner Runner) *Tasks {
	return &Tasks{profile: profile, config: config, runner: runner}
}

// CompileOptions are the knobs of Compile.
type CompileOptions struct {
	Clean       bool
	Config      string
	Jobs        int // below 1 lets the native tool choose
	GenWrappers bool
	Defines     []string // KEY=VALUE or KEY:TYPE=VALUE
}

// Compile configures, builds and installs into the build directory, and
// optionally generates conda wrappers for the result. Every step is rendered
// before the build directory is touched.
func (t *Tasks) Compile(ctx context.Context, o CompileOptions) error {
	c := cmake.New(t.profile, t.config.SourceDir, t.config.BuildDir).
		BuildType(o.Config).
		Jobs(o.Jobs)
	for _, d := range o.Defines {
		if err := c.DefineArg(d); err != nil {
			return err
		}
	}
	configure, err := c.ConfigureStep()
	if err != nil {
		return err
	}
	steps := []buildsys.Step{configure, c.BuildStep()}

	if o.GenWrappers {
		gen, err := wrappers.GenerateStep(t.profile, t.config.CondaPrefix, t.config.WrappersDir())
		if err != nil {
			return err
		}
		steps = append(steps, gen.In(t.config.BuildDir))
	}

	buildDir, err := builddir.Prepare(t.config.BuildDir, o.Clean)
	if err != nil {
		return err
	}
	log.Infof("autodiff build directory: %s", buildDir)
	return t.runner.Run(ctx, steps...)
}

// Clear removes the build directory at path without recreating it.
func (t *Tasks) Clear(path string) error {
	if path == "" {
		path = t.config.BuildDir
	}
	return builddir.Remove(path)
}

// Wrappers regenerates the conda wrappers into destDir from scratch.
func (t *Tasks) Wrappers(ctx context.Context, destDir string) error {
	if destDir == "" {
		destDir = t.config.WrappersDir()
	}
	gen, err := wrappers.GenerateStep(t.profile, t.config.CondaPrefix, destDir)
	if err != nil {
		return err
	}
	if _, err := builddir.Prepare(destDir, true); err != nil {
		return err
	}
	log.Infof("generating conda wrappers to %s from %s", destDir, wrappers.BinDir(t.profile, t.config.CondaPrefix))
	return t.runner.Run(ctx, gen)
}

// Tests runs the compiled test suite for config.
func (t *Tasks) Tests(ctx context.Context, config string) error {
	if config == "" {
		config = cmake.DefaultConfig
	}
	return t.runner.Run(ctx, catch.TestStep(t.profile, t.config.BuildDir, config))
}

// MSVC generates a Visual Studio solution under <build>/msvc.
func (t *Tasks) MSVC(ctx context.Context, clean bool, config string) error {
	buildDir, err := builddir.Prepare(t.config.MSVCDir(), clean)
	if err != nil {
		return err
	}
	configure, err := cmake.New(t.profile, t.config.SourceDir, buildDir).
		Generator(platform.VisualStudio).
		Arch("x64").
		BuildType(config).
		ConfigureStep()
	if err != nil {
		return err
	}
	return t.runner.Run(ctx, configure)
}
