// Package platform resolves the host capabilities that command rendering
// depends on.
package platform

import (
	"runtime"
	"strings"
)

// Shell describes how a rendered command line is handed to the OS.
type Shell struct {
	Path string // e.g. "/bin/sh", "cmd.exe"
	Flag string // e.g. "-c", "/C"
}

// Profile is the result of resolving the host platform once at start.
type Profile struct {
	GOOS      string
	Generator string // default cmake generator
	PathSep   string
	ExeSuffix string
	Shell     Shell
}

// VisualStudio is the generator used for Windows builds.
const VisualStudio = "Visual Studio 16 2019"

// Host returns the profile of the running operating system.
func Host() Profile {
	return Resolve(runtime.GOOS)
}

// Resolve returns the profile for goos.
func Resolve(goos string) Profile {
	if goos == "windows" {
		return Profile{
			GOOS:      goos,
			Generator: VisualStudio,
			PathSep:   `\`,
			ExeSuffix: ".exe",
			Shell:     Shell{Path: "cmd.exe", Flag: "/C"},
		}
	}
	return Profile{
		GOOS:      goos,
		Generator: "Ninja",
		PathSep:   "/",
		Shell:     Shell{Path: "/bin/sh", Flag: "-c"},
	}
}

// Windows reports whether p describes a Windows host.
func (p Profile) Windows() bool {
	return p.GOOS == "windows"
}

// Join joins path elements with the profile's separator. Unlike
// filepath.Join it does not clean the result, so rendering for a foreign
// platform keeps the caller's spelling.
func (p Profile) Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for i, e := range elem {
		if e == "" {
			continue
		}
		if i > 0 {
			e = strings.TrimLeft(e, `/\`)
		}
		if i < len(elem)-1 {
			e = strings.TrimRight(e, `/\`)
		}
		parts = append(parts, e)
	}
	return strings.Join(parts, p.PathSep)
}

// Exe appends the executable suffix to name.
func (p Profile) Exe(name string) string {
	return name + p.ExeSuffix
}
