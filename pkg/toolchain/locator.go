// Package toolchain resolves installed components of the host Go toolchain
// to executable paths.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	log "github.com/charmbracelet/log"
)

// Locator resolves a named toolchain component to an executable path.
// Absence is a normal empty result, not an error.
type Locator interface {
	FindInstalledComponent(name string) (string, bool)
}

// PathLocator searches a fixed list of toolchain directories, then PATH.
type PathLocator struct {
	// ExtraDirs are searched first, in order.
	ExtraDirs []string
}

// Default returns the locator used when none is configured.
func Default() Locator {
	return &PathLocator{}
}

// FindInstalledComponent searches the toolchain for an executable named
// name. Search order: ExtraDirs, $GOBIN, $GOROOT/bin, $GOPATH/bin, then
// PATH as a fallback.
func (l *PathLocator) FindInstalledComponent(name string) (string, bool) {
	exe := name
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}

	for _, dir := range l.searchDirs() {
		candidate := filepath.Join(dir, exe)
		if isExecutable(candidate) {
			log.Debug("found toolchain component", "name", name, "path", candidate)
			return candidate, true
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		log.Debug("found toolchain component on PATH", "name", name, "path", path)
		return path, true
	}

	return "", false
}

func (l *PathLocator) searchDirs() []string {
	dirs := append([]string{}, l.ExtraDirs...)
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		dirs = append(dirs, gobin)
	}
	if goroot := runtime.GOROOT(); goroot != "" {
		dirs = append(dirs, filepath.Join(goroot, "bin"))
	}
	if gopath := gopathDir(); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "bin"))
	}
	return dirs
}

// gopathDir mirrors the go command's default when GOPATH is unset.
func gopathDir() string {
	if p := os.Getenv("GOPATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "go")
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
