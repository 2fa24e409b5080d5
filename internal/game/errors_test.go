package game

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMatchesByKind(t *testing.T) {
	err := fmt.Errorf("load pet: %w", WrapError(KindIOFailure, "read save", fs.ErrPermission))
	if !errors.Is(err, ErrIOFailure) {
		t.Fatalf("expected io failure kind")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("kinds should not cross-match")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("cause should stay reachable")
	}
	if got := err.Error(); got != "load pet: read save: permission denied" {
		t.Fatalf("message=%q", got)
	}
	if got := NewError(KindEncounterOver, "done").Error(); got != "done" {
		t.Fatalf("message=%q", got)
	}
}
