package trash

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
	"time"

	"trash-cli/internal/storage"
)

// InfoDir is one trash directory: the info directory holding trashinfo
// files and its sibling files directory holding backup copies. Volume is
// empty for the home trash.
type InfoDir struct {
	Path   string
	Volume string

	reader storage.Reader
}

func NewInfoDir(reader storage.Reader, path string, volume string) InfoDir {
	return InfoDir{Path: path, Volume: volume, reader: reader}
}

// FilesDir is the directory holding backup copies.
func (d InfoDir) FilesDir() string {
	return filepath.Join(filepath.Dir(d.Path), "files")
}

// Entry is one trashinfo file name inside an InfoDir.
type Entry struct {
	Name string

	infoDir  string
	filesDir string
}

func (d InfoDir) entry(name string) Entry {
	return Entry{Name: name, infoDir: d.Path, filesDir: d.FilesDir()}
}

// TrashInfoPath is the metadata file.
func (e Entry) TrashInfoPath() string {
	return filepath.Join(e.infoDir, e.Name)
}

// BackupCopyPath is the trashed file itself.
func (e Entry) BackupCopyPath() string {
	return filepath.Join(e.filesDir, strings.TrimSuffix(e.Name, TrashInfoSuffix))
}

// Record is a decoded trashinfo file.
type Record struct {
	Entry            Entry
	DeletionDate     time.Time
	OriginalLocation string
}

// Records yields every trashinfo whose fields all parse. Malformed files
// go to report and are skipped. Errors are I/O failures and end the scan.
func (d InfoDir) Records(report ErrorReporter) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for entry, err := range d.entries() {
			if err != nil {
				yield(Record{}, err)
				return
			}

			contents, found, err := d.contentsOf(entry)
			if err != nil {
				yield(Record{}, err)
				return
			}
			if !found {
				continue
			}

			deletedAt, dateOK := ParseDeletionDate(entry.TrashInfoPath(), contents, report)
			location, pathOK := ParseOriginalLocation(entry.TrashInfoPath(), contents, d.Volume, report)
			if !dateOK || !pathOK {
				continue
			}

			if !yield(Record{Entry: entry, DeletionDate: deletedAt, OriginalLocation: location}, nil) {
				return
			}
		}
	}
}

// Expired yields the entries policy accepts. Only the deletion date is
// decoded, so a bad Path= line does not keep an entry from being purged.
func (d InfoDir) Expired(policy Policy, report ErrorReporter) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for entry, err := range d.entries() {
			if err != nil {
				yield(Entry{}, err)
				return
			}

			contents, found, err := d.contentsOf(entry)
			if err != nil {
				yield(Entry{}, err)
				return
			}
			if !found {
				continue
			}

			deletedAt, known := ParseDeletionDate(entry.TrashInfoPath(), contents, report)
			if !policy.Eligible(deletedAt, known) {
				continue
			}

			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Orphans yields backup copies that have no trashinfo file.
func (d InfoDir) Orphans() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		names, err := d.reader.EntriesIfDirExists(d.FilesDir())
		if err != nil {
			yield("", err)
			return
		}

		for _, name := range names {
			trashInfo := filepath.Join(d.Path, name+TrashInfoSuffix)
			if d.reader.Exists(trashInfo) {
				continue
			}

			if !yield(filepath.Join(d.FilesDir(), name), nil) {
				return
			}
		}
	}
}

// contentsOf reads a trashinfo file. One that vanished since the listing
// was taken is reported as not found.
func (d InfoDir) contentsOf(entry Entry) (string, bool, error) {
	contents, err := d.reader.ContentsOf(entry.TrashInfoPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return contents, true, nil
}

func (d InfoDir) entries() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		names, err := d.reader.EntriesIfDirExists(d.Path)
		if err != nil {
			yield(Entry{}, err)
			return
		}

		for _, name := range names {
			if !strings.HasSuffix(name, TrashInfoSuffix) {
				continue
			}
			if !yield(d.entry(name), nil) {
				return
			}
		}
	}
}
