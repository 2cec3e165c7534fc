package badge

import (
	"path/filepath"
	"strings"

	"github.com/user/badgemaker/pkg/ports"
)

// DefaultExt is the output container extension. ffmpeg's libwebp encoder
// produces animated, alpha-capable WebP.
const DefaultExt = ".webp"

// ResolveDest joins the save directory and file name, appending DefaultExt
// when the name does not already carry it (case-insensitive).
func ResolveDest(saveDir, fileName string) string {
	if !strings.HasSuffix(strings.ToLower(fileName), DefaultExt) {
		fileName += DefaultExt
	}
	return filepath.Join(saveDir, fileName)
}

// DefaultFileName derives the output name from the source: its stem plus
// DefaultExt.
func DefaultFileName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + DefaultExt
}

// CheckOverwrite reports whether destPath already exists. When it does, the
// caller must obtain an explicit overwrite confirmation before a run may
// start; this package never deletes or overwrites on its own.
func CheckOverwrite(fs ports.FileSystem, destPath string) (bool, error) {
	return fs.Exists(destPath)
}
