package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"trash-cli/internal/config"
	"trash-cli/internal/event"
	"trash-cli/internal/mount"
	"trash-cli/internal/storage"
	"trash-cli/internal/trash"
	"trash-cli/pkg/cmderror"
)

// Version is reported by --version. Overridden at build time with
// -ldflags "-X trash-cli/internal/app.Version=...".
var Version = "0.11.3"

// Deps are the collaborators every command needs. None has a default:
// callers choose real or fake implementations explicitly.
type Deps struct {
	Env     map[string]string
	UID     int
	Volumes trash.VolumeLister
	Storage storage.Storage
	Now     func() time.Time
	Bus     event.Bus
	Logger  *slog.Logger
}

func (d Deps) validate() error {
	var errs []error
	if d.Env == nil {
		errs = append(errs, errors.New("environment is required"))
	}
	if d.Volumes == nil {
		errs = append(errs, errors.New("volume lister is required"))
	}
	if d.Storage == nil {
		errs = append(errs, errors.New("storage is required"))
	}
	if d.Now == nil {
		errs = append(errs, errors.New("clock is required"))
	}
	if d.Bus == nil {
		errs = append(errs, errors.New("event bus is required"))
	}
	if d.Logger == nil {
		errs = append(errs, errors.New("logger is required"))
	}
	return errors.Join(errs...)
}

func (d Deps) finder() *trash.Finder {
	return trash.NewFinder(d.Env, d.UID, d.Volumes)
}

// SystemDeps wires the real filesystem, mount table, clock and user id.
func SystemDeps(cfg *config.Config, logger *slog.Logger) Deps {
	bus := event.NewBus()
	bus.Subscribe(LogEvents(logger))

	return Deps{
		Env:     cfg.Env,
		UID:     os.Geteuid(),
		Volumes: mount.NewLister(),
		Storage: storage.NewOS(),
		Now:     time.Now,
		Bus:     bus,
		Logger:  logger,
	}
}

// LogEvents logs every bus event at debug level.
func LogEvents(logger *slog.Logger) event.Handler {
	logger = logger.With("component", "events")
	return func(e event.Event) {
		logger.Debug(string(e.Type), "id", e.ID, "path", e.Path)
	}
}

func programName(argv []string) string {
	if len(argv) == 0 || argv[0] == "" {
		return "trash"
	}
	return filepath.Base(argv[0])
}

// scanError maps a failure met while walking trash directories to a
// command error.
func scanError(err error) error {
	var deletionErr *trash.DeletionError
	switch {
	case errors.As(err, &deletionErr):
		return cmderror.New("DELETE_FAILED", "cannot remove trash entry", deletionErr.Path, 1, err)
	case errors.Is(err, trash.ErrVolumesUnavailable):
		return cmderror.New("VOLUMES_UNAVAILABLE", "cannot list mounted volumes", err.Error(), 1, err)
	default:
		return cmderror.New("SCAN_FAILED", "cannot read trash directory", err.Error(), 1, err)
	}
}

// ExitStatus is the process exit status for an error returned by Run.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}

	var cmdErr *cmderror.Error
	if errors.As(err, &cmdErr) && cmdErr.ExitStatus != 0 {
		return cmdErr.ExitStatus
	}
	return 1
}
