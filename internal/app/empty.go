package app

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"trash-cli/internal/event"
	"trash-cli/internal/trash"
)

const emptyUsage = `Usage: %s [days]

Purge trashed files.

Options:
  --version   show program's version number and exit
  -h, --help  show this help message and exit
`

type EmptyCmd struct {
	out    io.Writer
	deps   Deps
	logger *slog.Logger
}

func NewEmptyCmd(out io.Writer, deps Deps) (*EmptyCmd, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("empty command: %w", err)
	}

	return &EmptyCmd{
		out:    out,
		deps:   deps,
		logger: deps.Logger.With("component", "empty"),
	}, nil
}

// Run purges every trash directory. With a numeric argument n only entries
// deleted more than n days ago are purged; the last numeric argument wins.
// --help and --version short-circuit at the first one seen. argv[0] is the
// program name.
func (c *EmptyCmd) Run(argv ...string) error {
	program := programName(argv)

	days, withDays := 0, false
	for _, arg := range argv[min(1, len(argv)):] {
		switch arg {
		case "--help", "-h":
			_, err := fmt.Fprintf(c.out, emptyUsage, program)
			return err
		case "--version":
			_, err := fmt.Fprintf(c.out, "%s %s\n", program, Version)
			return err
		}
		if n, err := strconv.Atoi(arg); err == nil {
			days, withDays = n, true
		}
	}

	policy := trash.Always
	if withDays {
		policy = trash.NewOlderThan(days, c.deps.Now)
	}

	return c.purge(policy)
}

func (c *EmptyCmd) purge(policy trash.Policy) error {
	reporter := &eventReporter{bus: c.deps.Bus, logger: c.logger}
	janitor := trash.NewJanitor(policy, c.deps.Storage, reporter, c.deps.Bus, c.deps.Logger)

	var purged, orphans int
	for dir, err := range c.deps.finder().InfoDirs(c.deps.Storage) {
		if err != nil {
			return scanError(err)
		}

		report, err := janitor.Sweep(dir)
		purged += report.Purged
		orphans += report.Orphans
		if err != nil {
			return scanError(err)
		}
	}

	c.logger.Debug("trash emptied", "purged", purged, "orphans", orphans)
	return nil
}

// eventReporter turns malformed trashinfo files met while purging into
// warnings and bus events.
type eventReporter struct {
	bus    event.Bus
	logger *slog.Logger
}

func (r *eventReporter) UnparsablePath(trashInfoPath string) {
	r.report(trashInfoPath, "Path")
}

func (r *eventReporter) UnparsableDeletionDate(trashInfoPath string) {
	r.report(trashInfoPath, "DeletionDate")
}

func (r *eventReporter) report(trashInfoPath string, field string) {
	r.logger.Warn("malformed trashinfo", "path", trashInfoPath, "field", field)
	r.bus.Publish(event.Event{Type: event.TypeRecordMalformed, Path: trashInfoPath, Payload: field})
}
