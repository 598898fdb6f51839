// Package cmake renders the cmake configure and build steps.
package cmake

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/autodiff/adtask/pkgs/buildsys"
	"github.com/autodiff/adtask/pkgs/platform"
)

// DefaultConfig is the build configuration used when none is given.
const DefaultConfig = "Release"

type defineValue struct {
	value    string
	typeName string
}

// CMake renders cmake command lines with chainable configuration.
type CMake struct {
	profile   platform.Profile
	sourceDir string
	buildDir  string
	generator string
	arch      string
	buildType string
	jobs      int
	defines   map[string]defineValue
}

// New returns a CMake for the given source and build directories using the
// profile's default generator and the Release configuration.
func New(p platform.Profile, sourceDir, buildDir string) *CMake {
	return &CMake{
		profile:   p,
		sourceDir: sourceDir,
		buildDir:  buildDir,
		generator: p.Generator,
		buildType: DefaultConfig,
		defines:   map[string]defineValue{},
	}
}

// Generator sets the cmake generator (e.g. "Ninja").
func (c *CMake) Generator(name string) *CMake {
	c.generator = name
	return c
}

// Arch sets the target architecture passed with -A. Empty means none.
func (c *CMake) Arch(arch string) *CMake {
	c.arch = arch
	return c
}

// BuildType sets the configuration name (e.g. "Release", "Debug").
func (c *CMake) BuildType(name string) *CMake {
	if name == "" {
		name = DefaultConfig
	}
	c.buildType = name
	return c
}

// Jobs sets the parallelism handed to the native build tool. Values below 1
// leave the choice to the tool.
func (c *CMake) Jobs(n int) *CMake {
	c.jobs = n
	return c
}

// Define adds a -D<key>:STRING=<value> definition.
func (c *CMake) Define(key, value string) *CMake {
	c.defines[key] = defineValue{value: value, typeName: "STRING"}
	return c
}

// DefineBool adds a -D<key>:BOOL=ON/OFF definition.
func (c *CMake) DefineBool(key string, value bool) *CMake {
	if value {
		c.defines[key] = defineValue{value: "ON", typeName: "BOOL"}
		return c
	}
	c.defines[key] = defineValue{value: "OFF", typeName: "BOOL"}
	return c
}

// DefineArg adds a definition written like cmake's own -D argument:
// KEY=VALUE or KEY:TYPE=VALUE. BOOL values follow cmake's truthiness;
// untyped entries are STRING.
func (c *CMake) DefineArg(arg string) error {
	kv, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("cmake: define %q is not KEY=VALUE or KEY:TYPE=VALUE", arg)
	}
	key, typeName, _ := strings.Cut(kv, ":")
	if key == "" {
		return fmt.Errorf("cmake: define %q has an empty key", arg)
	}
	switch typeName = strings.ToUpper(typeName); typeName {
	case "", "STRING":
		c.Define(key, value)
	case "BOOL":
		c.DefineBool(key, isTrue(value))
	default:
		c.defines[key] = defineValue{value: value, typeName: typeName}
	}
	return nil
}

func isTrue(v string) bool {
	switch strings.ToUpper(v) {
	case "1", "ON", "YES", "TRUE", "Y":
		return true
	}
	return false
}

// ConfigureStep renders the configure invocation. It runs in the build
// directory.
func (c *CMake) ConfigureStep() (buildsys.Step, error) {
	var b strings.Builder
	b.WriteString("cmake\n")
	fmt.Fprintf(&b, "    -G %s\n", buildsys.Quote(c.generator))
	if c.arch != "" {
		fmt.Fprintf(&b, "    -A %s\n", buildsys.Quote(c.arch))
	}
	if c.profile.Windows() {
		fmt.Fprintf(&b, "    -S %s\n", c.sourceDir)
		fmt.Fprintf(&b, "    -B %s\n", c.buildDir)
		writeLines(&b, c.definesArgs())
	} else {
		rel, err := filepath.Rel(c.buildDir, c.sourceDir)
		if err != nil {
			return buildsys.Step{}, fmt.Errorf("cmake: locate source from build dir: %w", err)
		}
		fmt.Fprintf(&b, "    -DCMAKE_BUILD_TYPE=%s\n", c.buildType)
		fmt.Fprintf(&b, "    -DCMAKE_INSTALL_PREFIX=%s\n", buildsys.Quote(filepath.ToSlash(c.buildDir)))
		writeLines(&b, c.definesArgs())
		fmt.Fprintf(&b, "    %s\n", buildsys.Quote(rel))
	}
	return buildsys.Step{
		Name: "configure",
		Line: buildsys.StripAndJoin(b.String()),
		Dir:  c.buildDir,
	}, nil
}

// BuildStep renders "cmake --build" for the install target.
func (c *CMake) BuildStep() buildsys.Step {
	return BuildStep(c.buildDir, c.buildType, c.jobs).In(c.buildDir)
}

// BuildStep renders the build-and-install invocation for buildDir. A jobs
// value below 1 omits the -j flag.
func BuildStep(buildDir, config string, jobs int) buildsys.Step {
	if config == "" {
		config = DefaultConfig
	}
	parallel := ""
	if jobs >= 1 {
		parallel = fmt.Sprintf("-j %d", jobs)
	}
	line := buildsys.StripAndJoin(fmt.Sprintf(`
		cmake
			--build %s
			--target install
			--config %s
			--
				%s
	`, buildDir, config, parallel))
	return buildsys.Step{Name: "build", Line: line}
}

func (c *CMake) definesArgs() []string {
	if len(c.defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.defines))
	for k := range c.defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		def := c.defines[k]
		value := def.value
		if strings.ContainsAny(value, " \t") {
			value = buildsys.Quote(value)
		}
		args = append(args, "-D"+k+":"+def.typeName+"="+value)
	}
	return args
}

func writeLines(b *strings.Builder, args []string) {
	for _, arg := range args {
		b.WriteString("    ")
		b.WriteString(arg)
		b.WriteByte('\n')
	}
}
