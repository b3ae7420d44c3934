package models

// Property is a building or complex that owns units.
type Property struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UnitStatus string

const (
	UnitVacant   UnitStatus = "vacant"
	UnitOccupied UnitStatus = "occupied"
)

func (s UnitStatus) Valid() bool {
	return s == UnitVacant || s == UnitOccupied
}

// Unit is a single rentable room or apartment.
type Unit struct {
	ID         int64      `json:"id"`
	Number     string     `json:"number"`
	Status     UnitStatus `json:"status"`
	PropertyID int64      `json:"property_id"`
}
