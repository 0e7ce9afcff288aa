package application

import "sermonvault/internal/domain"

// Re-export vault data field names for use by adapters
type VaultDataField = domain.VaultDataField

const (
	FieldTags      = domain.FieldTags
	FieldLocations = domain.FieldLocations
	FieldServices  = domain.FieldServices
)

// Re-export domain types for use by adapters
type (
	SermonRecord    = domain.SermonRecord
	DeliverySession = domain.DeliverySession
	SearchFilters   = domain.SearchFilters
	IndexSnapshot   = domain.IndexSnapshot
	Stats           = domain.Stats
	FilterOptions   = domain.FilterOptions
	VaultData       = domain.VaultData
	FileFormat      = domain.FileFormat
)

// Today returns the current date in the vault's date layout
func Today() string {
	return domain.Today()
}
