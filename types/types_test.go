package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{
		labels := []string{"T", "U", "V", "W"}
		for i, gp := range []GridPosition{T_Point, U_Point, V_Point, W_Point} {
			assert.Equal(t, labels[i], gp.String())
		}
		assert.Equal(t, "Unknown", GridPosition(42).String())
	}
}

func TestTimeSlot(t *testing.T) {
	assert.Equal(t, Slot1, Slot0.Other())
	assert.Equal(t, Slot0, Slot1.Other())
	assert.Equal(t, "Slot1", Slot1.String())
	assert.Equal(t, "Unknown", TimeSlot(3).String())
}
