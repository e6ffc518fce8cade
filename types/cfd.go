package types

// GridPosition names the staggered location a field lives on in the Arakawa C grid
type GridPosition uint8

const (
	T_Point GridPosition = iota // Tracer cell center
	U_Point                     // East face, zonal velocity
	V_Point                     // North face, meridional velocity
	W_Point                     // Top face, vertical velocity
)

func (gp GridPosition) String() string {
	switch gp {
	case T_Point:
		return "T"
	case U_Point:
		return "U"
	case V_Point:
		return "V"
	case W_Point:
		return "W"
	}
	return "Unknown"
}

// TimeSlot selects one of the two stored time levels of a prognostic field
type TimeSlot uint8

const (
	Slot0 TimeSlot = iota
	Slot1
)

// Other is the time level that is not ts
func (ts TimeSlot) Other() TimeSlot { return 1 - ts }

func (ts TimeSlot) String() string {
	switch ts {
	case Slot0:
		return "Slot0"
	case Slot1:
		return "Slot1"
	}
	return "Unknown"
}
