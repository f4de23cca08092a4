package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	err := Append(dir, []Entry{
		{Timestamp: ts, User: "supervisor", Action: "login", Details: "session opened"},
	})
	require.NoError(t, err)

	err = Append(dir, []Entry{
		{Timestamp: ts.Add(time.Minute), User: "supervisor", Action: "invoice-generated", Details: "ABC Company Ltd - Consulting", Ref: "INV123456AB12"},
	})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "login", entries[0].Action)
	assert.Equal(t, "INV123456AB12", entries[1].Ref)
	assert.True(t, entries[0].Timestamp.Equal(ts))
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecent(t *testing.T) {
	entries := []Entry{
		{Action: "login"},
		{Action: "customer-created"},
		{Action: "invoice-generated"},
	}

	recent := Recent(entries, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "invoice-generated", recent[0].Action)
	assert.Equal(t, "customer-created", recent[1].Action)

	assert.Len(t, Recent(entries, 10), 3)
	assert.Empty(t, Recent(entries, 0))
	assert.Empty(t, Recent(nil, 5))
}
