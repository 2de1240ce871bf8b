package trash

import (
	"fmt"
	"log/slog"

	"trash-cli/internal/event"
	"trash-cli/internal/storage"
)

// SweepReport counts what one sweep removed.
type SweepReport struct {
	InfoDir string
	Purged  int
	Orphans int
}

// Janitor purges one trash directory at a time.
type Janitor struct {
	policy  Policy
	remover storage.Remover
	report  ErrorReporter
	bus     event.Bus
	logger  *slog.Logger
}

func NewJanitor(policy Policy, remover storage.Remover, report ErrorReporter, bus event.Bus, logger *slog.Logger) *Janitor {
	return &Janitor{
		policy:  policy,
		remover: remover,
		report:  report,
		bus:     bus,
		logger:  logger.With("component", "trash.janitor"),
	}
}

// Sweep removes every entry the policy accepts, backup copy first, then
// every orphaned backup copy regardless of age. The first removal that
// fails stops the sweep with a *DeletionError.
//
// Removing the pair is not atomic. A crash in between leaves an orphan
// that the next sweep collects.
func (j *Janitor) Sweep(dir InfoDir) (SweepReport, error) {
	report := SweepReport{InfoDir: dir.Path}

	for entry, err := range dir.Expired(j.policy, j.report) {
		if err != nil {
			return j.fail(report, fmt.Errorf("scan %q: %w", dir.Path, err))
		}

		if err := j.remover.RemoveFileIfExists(entry.BackupCopyPath()); err != nil {
			return j.fail(report, &DeletionError{Path: entry.BackupCopyPath(), Err: err})
		}
		if err := j.remover.RemoveFile(entry.TrashInfoPath()); err != nil {
			return j.fail(report, &DeletionError{Path: entry.TrashInfoPath(), Err: err})
		}

		report.Purged++
		j.bus.Publish(event.Event{Type: event.TypeEntryPurged, Path: entry.TrashInfoPath()})
	}

	for orphan, err := range dir.Orphans() {
		if err != nil {
			return j.fail(report, fmt.Errorf("scan %q: %w", dir.FilesDir(), err))
		}

		if err := j.remover.RemoveFileIfExists(orphan); err != nil {
			return j.fail(report, &DeletionError{Path: orphan, Err: err})
		}

		report.Orphans++
		j.bus.Publish(event.Event{Type: event.TypeOrphanPurged, Path: orphan})
	}

	j.bus.Publish(event.Event{Type: event.TypeSweepCompleted, Path: dir.Path, Payload: report})
	if report.Purged > 0 || report.Orphans > 0 {
		j.logger.Info("trash directory swept",
			"info_dir", dir.Path,
			"purged", report.Purged,
			"orphans", report.Orphans,
		)
	}

	return report, nil
}

func (j *Janitor) fail(report SweepReport, err error) (SweepReport, error) {
	j.bus.Publish(event.Event{Type: event.TypeSweepFailed, Path: report.InfoDir, Payload: err})
	j.logger.Debug("sweep aborted", "info_dir", report.InfoDir, "error", err)
	return report, err
}
