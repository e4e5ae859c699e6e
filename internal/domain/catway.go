package domain

// CatwayType enumerates berth categories.
type CatwayType string

const (
	CatwayTypeLong  CatwayType = "long"
	CatwayTypeShort CatwayType = "short"
)

// Catway is a berth in the marina. CatwayNumber is the human-facing slot
// number, distinct from the record id.
type Catway struct {
	ID           string     `json:"id"`
	CatwayNumber int        `json:"catwayNumber"`
	Type         CatwayType `json:"type"`
	CatwayState  string     `json:"catwayState"`
}
