package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // last quiz scored 90% or more
	MascotAlert                     // several facts keep getting missed
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ×<> │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ×<> │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ×<> │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}

// pickMascot chooses the variant from the latest quiz accuracy and the
// number of repeatedly missed facts.
func pickMascot(lastAccuracy int, hasLast bool, missed int) MascotVariant {
	switch {
	case hasLast && lastAccuracy >= 90:
		return MascotCelebrating
	case missed >= 3:
		return MascotAlert
	default:
		return MascotIdle
	}
}
