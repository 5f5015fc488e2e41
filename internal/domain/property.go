package domain

// Property and Unit mirror the external catalog. This service only reads
// them to enforce that a unit, when set, belongs to the referenced property.
type Property struct {
	ID     int32  `json:"id"`
	Name   string `json:"name"`
	Suburb string `json:"suburb"`
}

type Unit struct {
	ID         int32   `json:"id"`
	PropertyID int32   `json:"property_id"`
	Label      string  `json:"label"`
	BaseRent   float64 `json:"base_rent"`
}
