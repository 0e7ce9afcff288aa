package commands

import (
	"context"
	"fmt"

	"sermonvault/internal/application"
	"sermonvault/internal/domain"
	"sermonvault/internal/ports"
)

// AddVaultEntryCommand adds a value to one of the controlled vocabularies
type AddVaultEntryCommand struct {
	store ports.VaultDataStore
	Field domain.VaultDataField
	Value string
}

// NewAddVaultEntryCommand creates a new AddVaultEntryCommand
func NewAddVaultEntryCommand(store ports.VaultDataStore, field domain.VaultDataField, value string) *AddVaultEntryCommand {
	return &AddVaultEntryCommand{store: store, Field: field, Value: value}
}

// Execute adds the value, persisting only if the data changed
func (c *AddVaultEntryCommand) Execute(ctx context.Context) error {
	if err := validateVaultDataField(c.Field); err != nil {
		return err
	}
	if err := application.ValidateRequired("value", c.Value); err != nil {
		return err
	}

	data, err := c.store.Load()
	if err != nil {
		return err
	}

	if !data.Add(c.Field, c.Value) {
		return nil // already present
	}

	return c.store.Save(data)
}

// RemoveVaultEntryCommand removes a value from one of the controlled
// vocabularies
type RemoveVaultEntryCommand struct {
	store ports.VaultDataStore
	Field domain.VaultDataField
	Value string
}

// NewRemoveVaultEntryCommand creates a new RemoveVaultEntryCommand
func NewRemoveVaultEntryCommand(store ports.VaultDataStore, field domain.VaultDataField, value string) *RemoveVaultEntryCommand {
	return &RemoveVaultEntryCommand{store: store, Field: field, Value: value}
}

// Execute removes the value, persisting only if the data changed
func (c *RemoveVaultEntryCommand) Execute(ctx context.Context) error {
	if err := validateVaultDataField(c.Field); err != nil {
		return err
	}

	data, err := c.store.Load()
	if err != nil {
		return err
	}

	if !data.Remove(c.Field, c.Value) {
		return nil // nothing to do
	}

	return c.store.Save(data)
}

func validateVaultDataField(field domain.VaultDataField) error {
	if !domain.ValidVaultDataField(field) {
		return &application.ValidationError{
			Field:   "field",
			Message: fmt.Sprintf("unknown vault data field: %s", field),
		}
	}
	return nil
}

// ListVaultDataCommand returns the full controlled vocabularies
type ListVaultDataCommand struct {
	store ports.VaultDataStore
}

// NewListVaultDataCommand creates a new ListVaultDataCommand
func NewListVaultDataCommand(store ports.VaultDataStore) *ListVaultDataCommand {
	return &ListVaultDataCommand{store: store}
}

// Execute loads the vault data
func (c *ListVaultDataCommand) Execute(ctx context.Context) (domain.VaultData, error) {
	return c.store.Load()
}
