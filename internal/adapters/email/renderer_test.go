package email

import (
	"testing"
	"time"

	"panelrecut/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRenderer_RenderNewRequest(t *testing.T) {
	r := NewContentRenderer("Aqua Dynamics")
	req := sampleRequest()
	req.Panels = append(req.Panels, domain.PanelInfo{
		PanelType:   "Rib",
		PanelNumber: "R-3, R-4",
		Material:    "Porcher Skytex 27",
		Quantity:    2,
		Side:        domain.SideLeftAndRight,
	})

	content, err := r.RenderNewRequest(req)
	require.NoError(t, err)

	assert.Equal(t, "Panel Recut Required - Order #ORD-2024-001", content.Subject)

	for _, body := range []string{content.HTML, content.Text} {
		assert.Contains(t, body, "Advance Alpha 7")
		assert.Contains(t, body, "ORD-2024-001")
		assert.Contains(t, body, "Jane")
		assert.Contains(t, body, "tear")
		assert.Contains(t, body, "June 1, 2025 at 10:30 AM")
		assert.Contains(t, body, "Dominico N20D")
		assert.Contains(t, body, "Porcher Skytex 27")
	}
	// "General " placeholder prefix is stripped for display.
	assert.Contains(t, content.Text, "Panel: Top Surface P-42")
	assert.NotContains(t, content.Text, "General Top Surface")
	assert.Contains(t, content.Text, "Quantity: 2")
	assert.Contains(t, content.Text, "Side: Left & Right Side")
	// HTML escapes the ampersand.
	assert.Contains(t, content.HTML, "Left &amp; Right Side")
	assert.Contains(t, content.Text, "Aqua Dynamics Panel Recut Management System")
}

func TestContentRenderer_RenderStatusUpdate(t *testing.T) {
	r := NewContentRenderer("Aqua Dynamics")
	req := sampleRequest()
	req.Status = domain.StatusInProgress
	req.UpdatedAt = time.Date(2025, 6, 2, 14, 5, 0, 0, time.UTC)

	content, err := r.RenderStatusUpdate(req)
	require.NoError(t, err)

	assert.Equal(t, "Status Update: In Progress - Order #ORD-2024-001", content.Subject)
	for _, body := range []string{content.HTML, content.Text} {
		assert.Contains(t, body, "Advance Alpha 7")
		assert.Contains(t, body, "In Progress")
		assert.Contains(t, body, "June 2, 2025 at 2:05 PM")
		// The panel list is omitted; only the summary repeats.
		assert.NotContains(t, body, "Dominico N20D")
		assert.NotContains(t, body, "P-42")
	}
}

func TestContentRenderer_HTMLAndTextShareSnapshot(t *testing.T) {
	r := NewContentRenderer("Aqua Dynamics")
	req := sampleRequest()
	req.GliderName = "Ozone Rush 6"

	content, err := r.RenderNewRequest(req)
	require.NoError(t, err)
	assert.Contains(t, content.HTML, "Ozone Rush 6")
	assert.Contains(t, content.Text, "Ozone Rush 6")
}
