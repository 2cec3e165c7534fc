// Package ffmpegpath resolves the external ffmpeg/ffprobe binaries.
package ffmpegpath

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/user/badgemaker/pkg/badge"
)

// BundledDirName is the directory next to the executable that may carry
// bundled tool binaries. It is checked before any system-wide search.
const BundledDirName = "ffmpeg_bin"

// Find resolves the path of an external tool ("ffmpeg" or "ffprobe") in the
// following order:
//  1. explicitPath, when non-empty
//  2. the FFMPEG_PATH / FFPROBE_PATH environment variable
//  3. a bundled ffmpeg_bin directory next to the executable, then the
//     executable's own directory
//  4. PATH
//  5. common install prefixes (/opt/homebrew/bin, /usr/local/bin)
//
// When nothing resolves, a badge.ToolNotFoundError is returned so the job
// fails before any processing starts.
func Find(tool, explicitPath string) (string, error) {
	if explicitPath != "" {
		if isFile(explicitPath) {
			return explicitPath, nil
		}
		return "", &badge.ToolNotFoundError{Tool: tool}
	}

	if envPath := os.Getenv(strings.ToUpper(tool) + "_PATH"); envPath != "" {
		if isFile(envPath) {
			return envPath, nil
		}
		return "", &badge.ToolNotFoundError{Tool: tool}
	}

	for _, dir := range bundledDirs() {
		for _, name := range candidateNames(tool) {
			path := filepath.Join(dir, name)
			if isFile(path) {
				return path, nil
			}
		}
	}

	for _, name := range candidateNames(tool) {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, prefix := range []string{"/opt/homebrew/bin", "/usr/local/bin"} {
		for _, name := range candidateNames(tool) {
			path := filepath.Join(prefix, name)
			if isFile(path) {
				return path, nil
			}
		}
	}

	return "", &badge.ToolNotFoundError{Tool: tool}
}

// bundledDirs lists the directories searched for bundled binaries, nearest
// first. Resolution failures just shrink the list.
func bundledDirs() []string {
	exe, err := os.Executable()
	if err != nil {
		return nil
	}
	exeDir := filepath.Dir(exe)
	return []string{
		filepath.Join(exeDir, BundledDirName),
		exeDir,
	}
}

// candidateNames returns the file names to try for a tool. Windows prefers
// the .exe suffix; elsewhere the bare name comes first.
func candidateNames(tool string) []string {
	if runtime.GOOS == "windows" {
		return []string{tool + ".exe", tool}
	}
	return []string{tool, tool + ".exe"}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
