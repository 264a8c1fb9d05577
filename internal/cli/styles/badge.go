package styles

import (
	"fmt"

	"github.com/bnema/emicon/internal/domain/entity"
)

// StateBadge renders the export pipeline state.
func (t *Theme) StateBadge(state entity.ExportState) string {
	switch state {
	case entity.ExportReady:
		return t.Badge.Background(t.Success).Render(state.String())
	case entity.ExportDrawing, entity.ExportExporting:
		return t.Badge.Background(t.Warning).Render(state.String())
	default:
		return t.BadgeMuted.Render(state.String())
	}
}

// VersionBadge renders an emoji version, e.g. "E13.0".
func (t *Theme) VersionBadge(version float64) string {
	return t.BadgeMuted.Render(fmt.Sprintf("E%.1f", version))
}

// CeilingBadge renders the active version ceiling.
func (t *Theme) CeilingBadge(ceiling entity.VersionCeiling) string {
	if !ceiling.Bounded {
		return t.BadgeMuted.Render("all versions")
	}
	return t.BadgeMuted.Render(fmt.Sprintf("≤ E%g", ceiling.Max))
}
