package screen

import (
	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/explain"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// Services is what screens need from the rest of the program. One value
// is shared by every screen of a running app.
type Services struct {
	Engine    session.Starter
	EventRepo store.EventRepo // nil disables history
	Explainer *explain.Service

	// Practice is the last selection, used to prefill the setup screen.
	Practice config.Practice

	// SavePractice persists a changed selection. May be nil.
	SavePractice func(config.Practice) error

	// LatestVersion is set when a newer release is available.
	LatestVersion string
}
