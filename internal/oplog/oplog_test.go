package oplog

import "testing"

func TestEmptyLog(t *testing.T) {
	var log Log

	if got := log.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if entries := log.Entries(); len(entries) != 0 {
		t.Errorf("Entries() = %v, want empty", entries)
	}
}

func TestRecordKeepsOrder(t *testing.T) {
	var log Log
	log.Record("2 + 3", 5)
	log.Record("5 * 2", 10)
	log.Record("10 - 4", 6)

	want := []string{"2 + 3 = 5", "5 * 2 = 10", "10 - 4 = 6"}
	got := log.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if log.Len() != 3 {
		t.Errorf("Len() = %d, want 3", log.Len())
	}
}

func TestRecordFormatsNegativeResults(t *testing.T) {
	var log Log
	log.Record("-6 / 3", -2)

	got := log.Entries()
	if len(got) != 1 || got[0] != "-6 / 3 = -2" {
		t.Errorf("Entries() = %v, want [\"-6 / 3 = -2\"]", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	var log Log
	log.Record("2 + 3", 5)

	entries := log.Entries()
	entries[0] = "tampered"

	if got := log.Entries()[0]; got != "2 + 3 = 5" {
		t.Errorf("log entry changed to %q after mutating the returned slice", got)
	}
}
