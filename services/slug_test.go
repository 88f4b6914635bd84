package services

import (
	"errors"
	"testing"
)

func TestResolveUniqueSlugFree(t *testing.T) {
	taken := func(slug string, excludeID uint) (bool, error) { return false, nil }

	got, err := resolveUniqueSlug("Widget Pro", 0, taken)
	if err != nil {
		t.Fatalf("resolveUniqueSlug: %v", err)
	}
	if got != "widget-pro" {
		t.Errorf("got %q, want %q", got, "widget-pro")
	}
}

func TestResolveUniqueSlugSuffix(t *testing.T) {
	used := map[string]bool{"widget": true, "widget-1": true}
	taken := func(slug string, excludeID uint) (bool, error) { return used[slug], nil }

	got, err := resolveUniqueSlug("Widget", 0, taken)
	if err != nil {
		t.Fatalf("resolveUniqueSlug: %v", err)
	}
	if got != "widget-2" {
		t.Errorf("got %q, want %q", got, "widget-2")
	}
}

func TestResolveUniqueSlugPropagatesError(t *testing.T) {
	boom := errors.New("db down")
	taken := func(slug string, excludeID uint) (bool, error) { return false, boom }

	if _, err := resolveUniqueSlug("Widget", 0, taken); !errors.Is(err, boom) {
		t.Errorf("expected error propagated, got %v", err)
	}
}
