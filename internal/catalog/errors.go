package catalog

// CatalogError represents catalog validation errors
type CatalogError string

func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrInvalidRarity           CatalogError = "invalid rarity"
	ErrMissingName             CatalogError = "card name is required"
	ErrInvalidEffect           CatalogError = "invalid modifier effect"
	ErrDuplicateID             CatalogError = "duplicate id"
	ErrMissingDefaultArchetype CatalogError = "default archetype not defined"
	ErrUnknownCareerLevel      CatalogError = "unknown career level"
)
