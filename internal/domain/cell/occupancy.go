package cell

// Occupancy is three-valued; "empty" means either awaiting restock or unassigned.
type Occupancy string

const (
	OccupancyVacant        Occupancy = "vacant"
	OccupancyAssignedEmpty Occupancy = "assigned_empty"
	OccupancyStocked       Occupancy = "stocked"
)

func (o Occupancy) String() string {
	return string(o)
}

func (o Occupancy) IsValid() bool {
	switch o {
	case OccupancyVacant, OccupancyAssignedEmpty, OccupancyStocked:
		return true
	default:
		return false
	}
}

func NewOccupancy(s string) (Occupancy, error) {
	o := Occupancy(s)
	if !o.IsValid() {
		return "", ErrInvalidOccupancy
	}
	return o, nil
}

// Mode tells whether an opening physically drove the dispenser.
type Mode string

const (
	ModeProduction Mode = "production"
	ModeDemo       Mode = "demo"
)

func (m Mode) String() string {
	return string(m)
}
