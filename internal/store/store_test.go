package store

import (
	"path/filepath"
	"testing"
)

type ledger struct {
	Points map[string]int `json:"points"`
}

func testRoundTrip(t *testing.T, s Store) {
	t.Helper()

	var out ledger
	ok, err := s.Get("missing", &out)
	if err != nil {
		t.Fatalf("get missing key: %v", err)
	}
	if ok {
		t.Fatal("missing key reported present")
	}

	in := ledger{Points: map[string]int{"Ana": 10, "Ben": 20}}
	if err := s.Set("ledger", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err = s.Get("ledger", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.Points["Ana"] != 10 || out.Points["Ben"] != 20 {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	if err := s.Remove("ledger"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if ok, _ := s.Get("ledger", &out); ok {
		t.Fatal("removed key still present")
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	testRoundTrip(t, NewMemory())
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()
	testRoundTrip(t, s)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set("ledger", ledger{Points: map[string]int{"Ana": 30}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	var out ledger
	ok, err := s2.Get("ledger", &out)
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if out.Points["Ana"] != 30 {
		t.Fatalf("persisted value = %+v", out)
	}
}

func TestSQLiteRejectsEmptyPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatal("blank path accepted")
	}
}

func TestSQLiteUpsertOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if err := s.Set("k", 1); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := s.Set("k", 2); err != nil {
		t.Fatalf("second set: %v", err)
	}
	var n int
	if ok, err := s.Get("k", &n); err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if n != 2 {
		t.Fatalf("value = %d, want overwrite to 2", n)
	}
}
