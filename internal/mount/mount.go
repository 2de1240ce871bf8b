// Package mount lists the mounted volumes that may carry a per-user trash.
package mount

import (
	"fmt"

	"github.com/moby/sys/mountinfo"
)

// Lister reads the mount table of the current process.
type Lister struct {
	getMounts func(mountinfo.FilterFunc) ([]*mountinfo.Info, error)
}

func NewLister() *Lister {
	return &Lister{getMounts: mountinfo.GetMounts}
}

// Volumes returns mount points in mount table order. A path mounted more
// than once is returned once, at its first position.
func (l *Lister) Volumes() ([]string, error) {
	mounts, err := l.getMounts(nil)
	if err != nil {
		return nil, fmt.Errorf("read mount table: %w", err)
	}

	seen := make(map[string]struct{}, len(mounts))
	out := make([]string, 0, len(mounts))
	for _, m := range mounts {
		if _, dup := seen[m.Mountpoint]; dup {
			continue
		}
		seen[m.Mountpoint] = struct{}{}
		out = append(out, m.Mountpoint)
	}

	return out, nil
}
