package file

import "testing"

func TestSetGetRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := s.Set("alumnosEscuela", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get("alumnosEscuela")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after Set")
	}
	if got != `[{"id":"1"}]` {
		t.Errorf("Get: got %q", got)
	}
}

func TestGetAbsentKey(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	got, ok, err := s.Get("missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || got != "" {
		t.Errorf("absent key: got %q ok=%v, want empty ok=false", got, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := s.Set("k", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", "second"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "second" {
		t.Errorf("Get after overwrite: got %q, want %q", got, "second")
	}
}
