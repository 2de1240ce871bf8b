package trash

import (
	"fmt"
	"iter"
	"path/filepath"
	"strconv"

	"trash-cli/internal/storage"
)

// VolumeLister returns the root paths of the currently mounted volumes.
type VolumeLister interface {
	Volumes() ([]string, error)
}

// VolumeListerFunc adapts a function to VolumeLister.
type VolumeListerFunc func() ([]string, error)

func (f VolumeListerFunc) Volumes() ([]string, error) {
	return f()
}

// Finder locates the trash directories that belong to one user.
type Finder struct {
	env     map[string]string
	uid     int
	volumes VolumeLister
}

func NewFinder(env map[string]string, uid int, volumes VolumeLister) *Finder {
	return &Finder{env: env, uid: uid, volumes: volumes}
}

// Location is a candidate info directory. Volume is empty for the home trash.
type Location struct {
	InfoDir string
	Volume  string
}

// Locations yields candidate info directories in probe order: the home
// trash first, then for each volume $topdir/.Trash/$uid followed by
// $topdir/.Trash-$uid. Nothing is checked for existence.
func (f *Finder) Locations() iter.Seq2[Location, error] {
	return func(yield func(Location, error) bool) {
		if home, ok := f.homeTrash(); ok {
			if !yield(Location{InfoDir: home}, nil) {
				return
			}
		}

		volumes, err := f.volumes.Volumes()
		if err != nil {
			yield(Location{}, fmt.Errorf("%w: %w", ErrVolumesUnavailable, err))
			return
		}

		uid := strconv.Itoa(f.uid)
		for _, volume := range volumes {
			if !yield(Location{InfoDir: filepath.Join(volume, ".Trash", uid, "info"), Volume: volume}, nil) {
				return
			}
			if !yield(Location{InfoDir: filepath.Join(volume, ".Trash-"+uid, "info"), Volume: volume}, nil) {
				return
			}
		}
	}
}

// InfoDirs yields an InfoDir reading through reader for every location.
func (f *Finder) InfoDirs(reader storage.Reader) iter.Seq2[InfoDir, error] {
	return func(yield func(InfoDir, error) bool) {
		for loc, err := range f.Locations() {
			if err != nil {
				yield(InfoDir{}, err)
				return
			}
			if !yield(NewInfoDir(reader, loc.InfoDir, loc.Volume), nil) {
				return
			}
		}
	}
}

// homeTrash picks $XDG_DATA_HOME/Trash, falling back to
// $HOME/.local/share/Trash. Empty values count as unset.
func (f *Finder) homeTrash() (string, bool) {
	if dataHome := f.env["XDG_DATA_HOME"]; dataHome != "" {
		return filepath.Join(dataHome, "Trash", "info"), true
	}
	if home := f.env["HOME"]; home != "" {
		return filepath.Join(home, ".local", "share", "Trash", "info"), true
	}

	return "", false
}
