package cell

import (
	"time"

	"github.com/google/uuid"
)

type TransitionKind string

const (
	// sale released the product; the assignment stays for the next refill
	TransitionDispense TransitionKind = "dispense"
	// courier opened the cell to load it; restock stamp is cleared until confirmation
	TransitionPrepareRefill TransitionKind = "prepare_refill"
	TransitionFill          TransitionKind = "fill"
	TransitionAssign        TransitionKind = "assign"
	TransitionUnassign      TransitionKind = "unassign"
)

type Transition struct {
	Kind      TransitionKind
	ProductID uuid.UUID
	CourierID uuid.UUID
	At        time.Time
}

func Dispense(at time.Time) Transition {
	return Transition{Kind: TransitionDispense, At: at}
}

func PrepareRefill(at time.Time) Transition {
	return Transition{Kind: TransitionPrepareRefill, At: at}
}

func Fill(courierID uuid.UUID, at time.Time) Transition {
	return Transition{Kind: TransitionFill, CourierID: courierID, At: at}
}

func Assign(productID uuid.UUID, at time.Time) Transition {
	return Transition{Kind: TransitionAssign, ProductID: productID, At: at}
}

func Unassign(at time.Time) Transition {
	return Transition{Kind: TransitionUnassign, At: at}
}
