package commands

import (
	"context"
	"errors"
	"testing"

	"sermonvault/internal/application"
	"sermonvault/internal/domain"
)

// fakeVaultStore implements ports.VaultDataStore in memory
type fakeVaultStore struct {
	data  domain.VaultData
	saves int
}

func (f *fakeVaultStore) Load() (domain.VaultData, error) {
	return f.data, nil
}

func (f *fakeVaultStore) Save(data domain.VaultData) error {
	f.data = data
	f.saves++
	return nil
}

func TestAddVaultEntryCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("adds and persists a new value", func(t *testing.T) {
		store := &fakeVaultStore{data: domain.VaultData{Tags: []string{"Kasih"}}}

		if err := NewAddVaultEntryCommand(store, domain.FieldTags, "Iman").Execute(ctx); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if store.saves != 1 {
			t.Errorf("expected one save, got %d", store.saves)
		}
		want := []string{"Iman", "Kasih"}
		if len(store.data.Tags) != 2 || store.data.Tags[0] != want[0] || store.data.Tags[1] != want[1] {
			t.Errorf("expected sorted tags %v, got %v", want, store.data.Tags)
		}
	})

	t.Run("duplicate value does not persist", func(t *testing.T) {
		store := &fakeVaultStore{data: domain.VaultData{Tags: []string{"Kasih"}}}

		if err := NewAddVaultEntryCommand(store, domain.FieldTags, "Kasih").Execute(ctx); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if store.saves != 0 {
			t.Errorf("expected no save for duplicate, got %d", store.saves)
		}
	})

	t.Run("empty value is rejected", func(t *testing.T) {
		store := &fakeVaultStore{}

		err := NewAddVaultEntryCommand(store, domain.FieldTags, "  ").Execute(ctx)
		var vErr *application.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		store := &fakeVaultStore{}

		err := NewAddVaultEntryCommand(store, domain.VaultDataField("themes"), "Advent").Execute(ctx)
		var vErr *application.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}

func TestRemoveVaultEntryCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and persists an existing value", func(t *testing.T) {
		store := &fakeVaultStore{data: domain.VaultData{Locations: []string{"GBI Haleluya", "GBI Sukawarna"}}}

		if err := NewRemoveVaultEntryCommand(store, domain.FieldLocations, "GBI Haleluya").Execute(ctx); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if store.saves != 1 {
			t.Errorf("expected one save, got %d", store.saves)
		}
		if len(store.data.Locations) != 1 || store.data.Locations[0] != "GBI Sukawarna" {
			t.Errorf("unexpected locations after remove: %v", store.data.Locations)
		}
	})

	t.Run("absent value does not persist", func(t *testing.T) {
		store := &fakeVaultStore{data: domain.VaultData{Locations: []string{"GBI Haleluya"}}}

		if err := NewRemoveVaultEntryCommand(store, domain.FieldLocations, "GBI Bandung").Execute(ctx); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if store.saves != 0 {
			t.Errorf("expected no save for absent value, got %d", store.saves)
		}
	})
}

func TestListVaultDataCommand(t *testing.T) {
	store := &fakeVaultStore{data: domain.VaultData{
		Tags:      []string{"Iman"},
		Locations: []string{"GBI Haleluya"},
		Services:  []string{"Raya 1"},
	}}

	data, err := NewListVaultDataCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(data.Tags) != 1 || len(data.Locations) != 1 || len(data.Services) != 1 {
		t.Errorf("unexpected vault data: %+v", data)
	}
}
