package event

import "time"

type Type string

const (
	TypeEntryPurged     Type = "trash.entry_purged"
	TypeOrphanPurged    Type = "trash.orphan_purged"
	TypeRecordMalformed Type = "trash.record_malformed"
	TypeSweepCompleted  Type = "trash.sweep_completed"
	TypeSweepFailed     Type = "trash.sweep_failed"
)

type Event struct {
	ID        string
	Type      Type
	Path      string // Path the event is about, if any
	Payload   any
	Timestamp time.Time
}

type Handler func(Event)

type Bus interface {
	Publish(e Event)
	Subscribe(h Handler) func() // Returns unsubscribe function
}
