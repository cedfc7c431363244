package sink

import (
	"github.com/matzehuels/flamefold/pkg/layout"
	"github.com/matzehuels/flamefold/pkg/profile"
)

// RenderJSON renders the layout as its JSON artifact, the same format
// written by `flamefold layout` and accepted by `flamefold render`.
func RenderJSON(l layout.Layout) ([]byte, error) {
	return profile.MarshalLayout(l)
}
