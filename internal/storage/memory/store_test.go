package memory

import "testing"

func TestRoundTrip(t *testing.T) {
	s := NewStore()

	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("expected ok=false on an empty store")
	}
	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != "v2" {
		t.Errorf("Get: got %q, want %q", got, "v2")
	}
}
