package cell

import "fmt"

// Note builds the human readable message returned to the caller of an opening.
func Note(kind ReasonKind, mode Mode, after *Cell) string {
	var base string
	switch kind {
	case ReasonSale:
		base = "product dispensed"
		if after != nil && after.Occupancy() == OccupancyAssignedEmpty {
			base = "product dispensed, cell is now empty and awaits restock"
		}
	case ReasonRefill:
		base = "cell opened for restock, confirm fill once loaded"
	case ReasonAdmin:
		base = "cell opened by administrator"
	default:
		base = "cell opened"
	}

	if mode == ModeDemo {
		return fmt.Sprintf("%s (demo mode: controller offline, no physical unlock was sent)", base)
	}
	return base
}
