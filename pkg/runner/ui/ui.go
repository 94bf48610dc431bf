package ui

import (
	"context"

	"tableflip.dev/jadwal/pkg/app"
	teaui "tableflip.dev/jadwal/pkg/tui/app"
)

// UI runs the terminal interface over a timetable service.
type UI struct {
	Service *app.Service
	// Watch reloads the view whenever the source file changes.
	Watch bool
}

func (d *UI) Do(ctx context.Context) error {
	return teaui.Run(ctx, d.Service, d.Watch)
}
