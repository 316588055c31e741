package storage

import (
	"os"
	"testing"
	"time"
)

func TestAppendAndList(t *testing.T) {
	s := New(t.TempDir())

	err := s.Append([]Record{
		{Name: "zeta", File: "zeta.png", Width: 400, Height: 400, Timestamp: time.Now(), Duration: time.Second},
		{Name: "gamma", File: "gamma.png", Width: 400, Height: 400, Timestamp: time.Now()},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestAppendReplacesByName(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Append([]Record{{Name: "zeta", Width: 160}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Append([]Record{{Name: "zeta", Width: 1600}, {Name: "siam", Width: 400}}); err != nil {
		t.Fatal(err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r, err := s.Load("zeta")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r.Width != 1600 {
		t.Errorf("expected replaced width 1600, got %d", r.Width)
	}
}

func TestListEmpty(t *testing.T) {
	s := New(t.TempDir())
	records, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty manifest, got %d records", len(records))
	}
}

func TestLoad_NotFound(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("nonexistent"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
