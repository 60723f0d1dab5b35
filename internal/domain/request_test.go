package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusInProgress, StatusDone, true},
		{StatusPending, StatusDone, false},
		{StatusPending, StatusPending, false},
		{StatusInProgress, StatusPending, false},
		{StatusDone, StatusPending, false},
		{StatusDone, StatusInProgress, false},
		{StatusDone, StatusDone, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCreateDamageRequestData_Validate(t *testing.T) {
	valid := CreateDamageRequestData{
		GliderName:  "Advance Alpha 7",
		OrderNumber: "ORD-2024-001",
		Reason:      "tear",
		RequestedBy: "Jane",
		Panels:      []PanelInfo{{PanelType: "Top Surface", PanelNumber: "P-42", Material: "Dominico N20D", Quantity: 1, Side: SideLeft}},
	}
	assert.NoError(t, valid.Validate())

	broken := valid
	broken.RequestedBy = ""
	assert.ErrorIs(t, broken.Validate(), ErrInvalidInput)

	broken = valid
	broken.Panels = []PanelInfo{}
	assert.ErrorIs(t, broken.Validate(), ErrInvalidInput)

	broken = valid
	broken.Panels = []PanelInfo{{PanelType: "Rib", PanelNumber: "R-1", Material: "Porcher Skytex 27", Quantity: 1, Side: Side("Upside Down")}}
	assert.ErrorIs(t, broken.Validate(), ErrInvalidInput)
}

func TestFilterMaterials(t *testing.T) {
	t.Run("prefix matches rank first", func(t *testing.T) {
		got := FilterMaterials("dominico")
		assert.NotEmpty(t, got)
		assert.Equal(t, "Dominico N20D", got[0])
	})

	t.Run("substring match", func(t *testing.T) {
		got := FilterMaterials("skytex 2")
		assert.Contains(t, got, "Porcher Skytex 27")
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, FilterMaterials("PORCHER"), FilterMaterials("porcher"))
	})

	t.Run("capped at ten", func(t *testing.T) {
		assert.LessOrEqual(t, len(FilterMaterials("")), 10)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterMaterials("carbon fiber"))
	})
}
