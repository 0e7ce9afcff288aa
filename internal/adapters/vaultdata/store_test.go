package vaultdata

import (
	"os"
	"path/filepath"
	"testing"

	"sermonvault/internal/adapters/filesystem"
	"sermonvault/internal/domain"
)

func TestLoad_DefaultsWhenAbsent(t *testing.T) {
	store := NewStore(filesystem.New(), t.TempDir())

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := domain.DefaultVaultData()
	if len(data.Tags) != len(defaults.Tags) {
		t.Errorf("expected default tags, got %v", data.Tags)
	}
}

func TestLoad_DefaultsWhenCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DataFileName), []byte("{broken"), 0644); err != nil {
		t.Fatalf("failed to write corrupt data: %v", err)
	}

	store := NewStore(filesystem.New(), dir)
	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(data.Locations) == 0 {
		t.Error("expected default locations for corrupt file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filesystem.New(), dir)

	data := domain.VaultData{
		Tags:      []string{"Advent"},
		Locations: []string{"GBI Haleluya"},
		Services:  []string{"Raya 1"},
	}
	if err := store.Save(data); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Tags) != 1 || loaded.Tags[0] != "Advent" {
		t.Errorf("unexpected tags after round trip: %v", loaded.Tags)
	}
}

func TestMutateThroughStore(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filesystem.New(), dir)

	data, _ := store.Load()
	data.Add(domain.FieldTags, "Advent")
	if err := store.Save(data); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, _ := store.Load()
	found := false
	for _, tag := range reloaded.Tags {
		if tag == "Advent" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Advent in persisted tags, got %v", reloaded.Tags)
	}
}
