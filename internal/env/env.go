package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/qiniu/x/gsh"
	"github.com/qiniu/x/log"
)

const (
	// BuildDirVar names the default build directory on non-Windows hosts.
	BuildDirVar = "AUTODIFF_BUILD_DIR"
	// PrefixVar names the active conda environment's installation prefix.
	PrefixVar = "CONDA_PREFIX"
)

// ErrNoBuildDir is returned when the build directory cannot be resolved.
var ErrNoBuildDir = errors.New("env: " + BuildDirVar + " is not set, activate the autodiff environment or pass --build-dir")

// Config holds the values resolved once at program start.
type Config struct {
	SourceDir   string
	BuildDir    string
	CondaPrefix string // may be empty until wrappers are needed
}

// Options control how Load resolves the configuration.
type Options struct {
	GOOS      string
	SourceDir string // defaults to the project root above the working directory
	BuildDir  string // overrides the environment
	Lookup    func(key string) string
}

// Load resolves the configuration. Without an explicit source directory the
// project root is searched for upward from the working directory, so tasks
// can be started from any subdirectory of the tree. GH Actions on Windows
// drop the variables set by the environment file, so Windows always builds
// under <source>/build-autodiff.
func Load(o Options) (Config, error) {
	lookup := o.Lookup
	if lookup == nil {
		lookup = func(key string) string { return gsh.Getenv(os.Environ(), key) }
	}

	sourceDir := o.SourceDir
	if sourceDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("env: get working directory: %w", err)
		}
		sourceDir = FindSourceRoot(wd)
	}
	sourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return Config{}, err
	}

	buildDir := o.BuildDir
	switch {
	case buildDir != "":
	case o.GOOS == "windows":
		buildDir = filepath.Join(sourceDir, "build-autodiff")
	default:
		// conda's activation scripts may leave path-list separators behind.
		buildDir = strings.ReplaceAll(lookup(BuildDirVar), ":", "")
		if buildDir == "" {
			return Config{}, ErrNoBuildDir
		}
	}
	buildDir, err = filepath.Abs(buildDir)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		SourceDir:   sourceDir,
		BuildDir:    buildDir,
		CondaPrefix: lookup(PrefixVar),
	}
	log.Debugf("source dir: %s, build dir: %s, conda prefix: %q", cfg.SourceDir, cfg.BuildDir, cfg.CondaPrefix)
	return cfg, nil
}

// FindSourceRoot returns the top of the cmake project containing dir: the
// outermost directory of the unbroken chain of CMakeLists.txt files that
// starts at the nearest one above dir. dir is returned when no
// CMakeLists.txt is found.
func FindSourceRoot(dir string) string {
	root := ""
	for cur := filepath.Clean(dir); ; {
		if hasCMakeLists(cur) {
			root = cur
		} else if root != "" {
			return root
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	if root == "" {
		return dir
	}
	return root
}

func hasCMakeLists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "CMakeLists.txt"))
	return err == nil && !info.IsDir()
}

// LoadDotenv reads KEY=VALUE pairs from path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotenv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("no %s file found, using environment variables", path)
		return nil
	}
	return err
}

// WrappersDir is the default destination for generated wrappers.
func (c Config) WrappersDir() string {
	return filepath.Join(c.BuildDir, "wrappers", "conda")
}

// MSVCDir is where the Visual Studio solution is generated.
func (c Config) MSVCDir() string {
	return filepath.Join(c.BuildDir, "msvc")
}
