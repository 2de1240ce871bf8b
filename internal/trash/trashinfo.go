package trash

import (
	"encoding/hex"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

const (
	// TrashInfoSuffix ends every metadata file name.
	TrashInfoSuffix = ".trashinfo"

	// DeletionDateLayout is the on-disk DeletionDate format. It carries no zone.
	DeletionDateLayout = "2006-01-02T15:04:05"

	pathKey         = "Path="
	deletionDateKey = "DeletionDate="
)

// ParseDeletionDate decodes the DeletionDate= line of a trashinfo file.
// The value is interpreted in local time.
func ParseDeletionDate(trashInfoPath string, contents string, report ErrorReporter) (time.Time, bool) {
	raw, ok := lookup(contents, deletionDateKey)
	if !ok {
		report.UnparsableDeletionDate(trashInfoPath)
		return time.Time{}, false
	}

	deletedAt, err := time.ParseInLocation(DeletionDateLayout, raw, time.Local)
	if err != nil {
		report.UnparsableDeletionDate(trashInfoPath)
		return time.Time{}, false
	}

	return deletedAt, true
}

// ParseOriginalLocation decodes the Path= line of a trashinfo file and
// joins it onto volume. Absolute paths are kept as they are: the home trash
// always stores them and volume trashes may. Malformed escapes such as %zz
// are kept literally.
func ParseOriginalLocation(trashInfoPath string, contents string, volume string, report ErrorReporter) (string, bool) {
	raw, ok := lookup(contents, pathKey)
	if !ok {
		report.UnparsablePath(trashInfoPath)
		return "", false
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = unescapeLoosely(raw)
	}
	if decoded == "" || strings.ContainsRune(decoded, 0) {
		report.UnparsablePath(trashInfoPath)
		return "", false
	}

	if volume == "" || filepath.IsAbs(decoded) {
		return decoded, true
	}

	return filepath.Join(volume, decoded), true
}

// FormatDeletionDate renders t the way it is stored in trashinfo files.
func FormatDeletionDate(t time.Time) string {
	return t.Format(DeletionDateLayout)
}

// unescapeLoosely decodes every well-formed %XX sequence and copies
// anything else through unchanged.
func unescapeLoosely(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if decoded, err := hex.DecodeString(s[i+1 : i+3]); err == nil {
				b.WriteByte(decoded[0])
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func lookup(contents string, key string) (string, bool) {
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, key) {
			return line[len(key):], true
		}
	}

	return "", false
}
