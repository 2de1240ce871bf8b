package trash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	paths []string
	dates []string
}

func (r *recordingReporter) UnparsablePath(path string)         { r.paths = append(r.paths, path) }
func (r *recordingReporter) UnparsableDeletionDate(path string) { r.dates = append(r.dates, path) }

func TestParseDeletionDate(t *testing.T) {
	t.Parallel()

	t.Run("round trips the stored format", func(t *testing.T) {
		stamps := []time.Time{
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local),
			time.Date(1999, 12, 31, 23, 59, 59, 0, time.Local),
			time.Date(2026, 10, 16, 8, 30, 5, 0, time.Local),
		}
		for _, want := range stamps {
			reporter := &recordingReporter{}
			contents := "[Trash Info]\nPath=/x\nDeletionDate=" + FormatDeletionDate(want) + "\n"

			got, ok := ParseDeletionDate("/i/a.trashinfo", contents, reporter)
			require.True(t, ok)
			require.True(t, want.Equal(got), "want %s got %s", want, got)
			require.Equal(t, FormatDeletionDate(want), FormatDeletionDate(got))
			require.Empty(t, reporter.dates)
		}
	})

	t.Run("line order and unknown keys do not matter", func(t *testing.T) {
		contents := "DeletionDate=2020-01-01T00:00:00\nFoo=bar\n[Trash Info]\nPath=/x"

		got, ok := ParseDeletionDate("/i/a.trashinfo", contents, IgnoreErrors)
		require.True(t, ok)
		require.Equal(t, "2020-01-01T00:00:00", FormatDeletionDate(got))
	})

	t.Run("carriage returns are tolerated", func(t *testing.T) {
		got, ok := ParseDeletionDate("/i/a.trashinfo", "[Trash Info]\r\nDeletionDate=2020-01-01T00:00:00\r\n", IgnoreErrors)
		require.True(t, ok)
		require.Equal(t, "2020-01-01T00:00:00", FormatDeletionDate(got))
	})

	cases := []struct {
		name     string
		contents string
	}{
		{name: "missing line", contents: "[Trash Info]\nPath=/x\n"},
		{name: "garbage value", contents: "[Trash Info]\nDeletionDate=yesterday\n"},
		{name: "zone suffix", contents: "DeletionDate=2020-01-01T00:00:00Z\n"},
		{name: "space separator", contents: "DeletionDate=2020-01-01 00:00:00\n"},
		{name: "empty contents", contents: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name+" is reported once", func(t *testing.T) {
			reporter := &recordingReporter{}

			got, ok := ParseDeletionDate("/i/bad.trashinfo", tc.contents, reporter)
			require.False(t, ok)
			require.True(t, got.IsZero())
			require.Equal(t, []string{"/i/bad.trashinfo"}, reporter.dates)
			require.Empty(t, reporter.paths)
		})
	}
}

func TestParseOriginalLocation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		volume   string
		want     string
	}{
		{name: "home trash keeps absolute path", contents: "Path=/home/u/file.txt", want: "/home/u/file.txt"},
		{name: "percent decoding", contents: "Path=/home/u/my%20file%25.txt", want: "/home/u/my file%.txt"},
		{name: "plus is literal", contents: "Path=/a+b", want: "/a+b"},
		{name: "utf-8 bytes", contents: "Path=/caf%C3%A9", want: "/café"},
		{name: "volume relative", contents: "Path=docs/a.txt", volume: "/mnt/usb", want: "/mnt/usb/docs/a.txt"},
		{name: "volume absolute", contents: "Path=/mnt/usb/docs/a.txt", volume: "/mnt/usb", want: "/mnt/usb/docs/a.txt"},
		{name: "broken escape is literal", contents: "Path=/a%zz", want: "/a%zz"},
		{name: "broken escape next to a good one", contents: "Path=/a%zz%20b%2", want: "/a%zz b%2"},
		{name: "query-like text is kept", contents: "Path=/a%3Fb?c", want: "/a?b?c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reporter := &recordingReporter{}

			got, ok := ParseOriginalLocation("/i/a.trashinfo", "[Trash Info]\n"+tc.contents+"\nDeletionDate=x\n", tc.volume, reporter)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
			require.Empty(t, reporter.paths)
		})
	}

	bad := []struct {
		name     string
		contents string
	}{
		{name: "missing line", contents: "[Trash Info]\nDeletionDate=2020-01-01T00:00:00\n"},
		{name: "empty value", contents: "Path="},
		{name: "nul byte", contents: "Path=/a%00b"},
	}
	for _, tc := range bad {
		t.Run(tc.name+" is reported once", func(t *testing.T) {
			reporter := &recordingReporter{}

			_, ok := ParseOriginalLocation("/i/bad.trashinfo", tc.contents, "", reporter)
			require.False(t, ok)
			require.Equal(t, []string{"/i/bad.trashinfo"}, reporter.paths)
			require.Empty(t, reporter.dates)
		})
	}

	t.Run("fields fail independently", func(t *testing.T) {
		reporter := &recordingReporter{}
		contents := "Path=/ok\nDeletionDate=nope\n"

		_, dateOK := ParseDeletionDate("/i/a.trashinfo", contents, reporter)
		location, pathOK := ParseOriginalLocation("/i/a.trashinfo", contents, "", reporter)

		require.False(t, dateOK)
		require.True(t, pathOK)
		require.Equal(t, "/ok", location)
		require.Len(t, reporter.dates, 1)
		require.Empty(t, reporter.paths)
	})
}
