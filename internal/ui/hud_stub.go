//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(any, bool) *HUD { return nil }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Update is a no-op in the headless build.
func (h *HUD) Update(bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
