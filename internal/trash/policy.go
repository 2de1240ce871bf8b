package trash

import "time"

// Policy decides whether a trashed entry may be purged. known is false
// when the entry's DeletionDate could not be parsed.
type Policy interface {
	Eligible(deletedAt time.Time, known bool) bool
}

type always struct{}

func (always) Eligible(time.Time, bool) bool { return true }

// Always makes every entry eligible, including undated ones.
var Always Policy = always{}

// OlderThan makes entries eligible when deleted strictly before the limit
// computed once at construction: now() minus days.
type OlderThan struct {
	Days  int
	Limit time.Time
}

// maxRetentionDays reaches further back than any four-digit year from any
// four-digit year. Larger counts are clamped to it so the date arithmetic
// cannot wrap around.
const maxRetentionDays = 10000 * 366

func NewOlderThan(days int, now func() time.Time) *OlderThan {
	span := min(max(days, -maxRetentionDays), maxRetentionDays)

	return &OlderThan{
		Days:  days,
		Limit: now().AddDate(0, 0, -span),
	}
}

// Eligible never matches undated entries: their age is unknown.
func (p *OlderThan) Eligible(deletedAt time.Time, known bool) bool {
	return known && deletedAt.Before(p.Limit)
}
