// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/semantics.go
// Summary: Defines standard semantic color bindings for reel styling.
// Usage: Maps high-level UI concepts (e.g., "border.focused") to palette colors.

package theme

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// StandardSemantics defines the default mappings from semantic names to
// palette colors. Values starting with "@" reference the palette; other
// values reference another semantic key.
var StandardSemantics = map[string]string{
	// Global accent (the pivot color for the theme)
	"accent": "@mauve",

	// Background surfaces
	"bg.base":    "@base",
	"bg.surface": "@surface0",

	// Text
	"text.primary": "@text",
	"text.muted":   "@overlay0",
	"text.notice":  "@red",

	// Borders
	"border.reel":    "@overlay0",
	"border.tablet":  "@green",
	"border.focused": "accent",
}

var (
	semanticsMu sync.RWMutex
	semantics   = map[string]string{}
	initialized bool
)

// Init loads the named palette and the standard semantic bindings. Safe
// to call more than once; later calls switch palettes.
func Init(palette string) error {
	if err := LoadPalette(palette); err != nil {
		return err
	}
	semanticsMu.Lock()
	for k, v := range StandardSemantics {
		if _, ok := semantics[k]; !ok {
			semantics[k] = v
		}
	}
	initialized = true
	semanticsMu.Unlock()
	return nil
}

func ensureLoaded() {
	semanticsMu.RLock()
	ok := initialized
	semanticsMu.RUnlock()
	if !ok {
		// Embedded default; cannot fail unless the build is broken.
		_ = Init("mocha")
	}
}

// SetSemantic overrides (or adds) a semantic binding.
func SetSemantic(key, value string) {
	ensureLoaded()
	semanticsMu.Lock()
	semantics[key] = value
	semanticsMu.Unlock()
}

// GetSemanticColor retrieves a color by its semantic name.
// Example: GetSemanticColor("border.focused") -> "accent" -> "@mauve" -> #cba6f7
func GetSemanticColor(key string) tcell.Color {
	ensureLoaded()
	semanticsMu.RLock()
	defer semanticsMu.RUnlock()
	// Follow semantic-to-semantic references, bounded to avoid cycles.
	for i := 0; i < 8; i++ {
		v, ok := semantics[key]
		if !ok {
			return tcell.ColorDefault
		}
		if len(v) > 0 && v[0] == '@' {
			return PaletteColor(v[1:])
		}
		key = v
	}
	return tcell.ColorDefault
}

// ReelStyles carries the three border styles a reel needs.
type ReelStyles struct {
	Border  tcell.Style
	Tablet  tcell.Style
	Focused tcell.Style
}

// DefaultReelStyles resolves the reel border styling from the theme.
func DefaultReelStyles() ReelStyles {
	bg := GetSemanticColor("bg.base")
	return ReelStyles{
		Border:  tcell.StyleDefault.Background(bg).Foreground(GetSemanticColor("border.reel")),
		Tablet:  tcell.StyleDefault.Background(bg).Foreground(GetSemanticColor("border.tablet")),
		Focused: tcell.StyleDefault.Background(bg).Foreground(GetSemanticColor("border.focused")).Bold(true),
	}
}

// SurfaceStyle is the default background style for reel hosts.
func SurfaceStyle() tcell.Style {
	return tcell.StyleDefault.
		Background(GetSemanticColor("bg.base")).
		Foreground(GetSemanticColor("text.primary"))
}

// NoticeStyle is used for stand-in messages such as the too-small notice.
func NoticeStyle() tcell.Style {
	return tcell.StyleDefault.
		Background(GetSemanticColor("bg.base")).
		Foreground(GetSemanticColor("text.notice")).
		Bold(true)
}
