package domain

import "sort"

// VaultData holds the controlled vocabularies offered when tagging sermons.
// Its lifecycle is independent of the index: mutated via add/remove, each
// list kept sorted ascending.
type VaultData struct {
	Tags      []string `json:"tags"`
	Locations []string `json:"locations"`
	Services  []string `json:"services"`
}

// VaultDataField names one of the three vocabulary lists
type VaultDataField string

const (
	FieldTags      VaultDataField = "tags"
	FieldLocations VaultDataField = "locations"
	FieldServices  VaultDataField = "services"
)

// DefaultVaultData returns the vocabularies a fresh vault starts with
func DefaultVaultData() VaultData {
	return VaultData{
		Tags:      []string{"Kasih", "Iman", "Pengharapan", "Natal", "Paskah", "Keluarga"},
		Locations: []string{"GBI Haleluya", "GBI Kristus"},
		Services:  []string{"Raya 1", "Raya 2", "Raya 3", "Raya 4", "Youth Service", "Kids Service"},
	}
}

// Add inserts value into the named list if not already present, keeping the
// list sorted. Returns true if the data changed.
func (d *VaultData) Add(field VaultDataField, value string) bool {
	list := d.list(field)
	if list == nil || contains(*list, value) {
		return false
	}
	*list = append(*list, value)
	sort.Strings(*list)
	return true
}

// Remove deletes value from the named list. Returns true if the data changed.
func (d *VaultData) Remove(field VaultDataField, value string) bool {
	list := d.list(field)
	if list == nil {
		return false
	}
	for i, v := range *list {
		if v == value {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// ValidVaultDataField reports whether field names one of the vocabulary lists
func ValidVaultDataField(field VaultDataField) bool {
	switch field {
	case FieldTags, FieldLocations, FieldServices:
		return true
	}
	return false
}

// Values returns the named list, or nil for an unknown field
func (d *VaultData) Values(field VaultDataField) []string {
	list := d.list(field)
	if list == nil {
		return nil
	}
	return *list
}

func (d *VaultData) list(field VaultDataField) *[]string {
	switch field {
	case FieldTags:
		return &d.Tags
	case FieldLocations:
		return &d.Locations
	case FieldServices:
		return &d.Services
	default:
		return nil
	}
}
