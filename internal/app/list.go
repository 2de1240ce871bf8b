package app

import (
	"fmt"
	"io"
)

const listUsage = `Usage: %s

List trashed files.

Options:
  --version   show program's version number and exit
  -h, --help  show this help message and exit
`

// ListDateLayout is how deletion dates are printed by trash-list.
const ListDateLayout = "2006-01-02 15:04:05"

type ListCmd struct {
	out    io.Writer
	errOut io.Writer
	deps   Deps
}

func NewListCmd(out io.Writer, errOut io.Writer, deps Deps) (*ListCmd, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("list command: %w", err)
	}

	return &ListCmd{out: out, errOut: errOut, deps: deps}, nil
}

// Run prints "<deletion date> <original location>" for every trashed file.
// argv[0] is the program name.
func (c *ListCmd) Run(argv ...string) error {
	program := programName(argv)

	for _, arg := range argv[min(1, len(argv)):] {
		switch arg {
		case "--help", "-h":
			_, err := fmt.Fprintf(c.out, listUsage, program)
			return err
		case "--version":
			_, err := fmt.Fprintf(c.out, "%s %s\n", program, Version)
			return err
		}
	}

	reporter := &listReporter{program: program, w: c.errOut}
	for dir, err := range c.deps.finder().InfoDirs(c.deps.Storage) {
		if err != nil {
			return scanError(err)
		}

		for rec, err := range dir.Records(reporter) {
			if err != nil {
				return scanError(err)
			}
			if _, err := fmt.Fprintf(c.out, "%s %s\n", rec.DeletionDate.Format(ListDateLayout), rec.OriginalLocation); err != nil {
				return err
			}
		}
	}

	return reporter.err
}

// listReporter prints one diagnostic line per malformed trashinfo file,
// however many of its fields are broken. The first failed write is kept in
// err; listing goes on.
type listReporter struct {
	program string
	w       io.Writer
	last    string
	err     error
}

func (r *listReporter) UnparsablePath(trashInfoPath string) {
	r.report(trashInfoPath)
}

func (r *listReporter) UnparsableDeletionDate(trashInfoPath string) {
	r.report(trashInfoPath)
}

func (r *listReporter) report(trashInfoPath string) {
	if trashInfoPath == r.last {
		return
	}
	r.last = trashInfoPath
	if _, err := fmt.Fprintf(r.w, "%s: cannot parse '%s'\n", r.program, trashInfoPath); err != nil && r.err == nil {
		r.err = err
	}
}
