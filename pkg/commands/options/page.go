package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/listing"
)

// PageOptions selects one page of an entity table.
type PageOptions struct {
	Search  string
	Page    int
	PerPage int
	ShowID  bool
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only show rows whose name contains this text, ignoring case.")
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page to show, starting at 1.")
	cmd.Flags().IntVar(&o.PerPage, "per-page", listing.DefaultPerPage,
		fmt.Sprintf("Rows per page. One of %v.", listing.PageSizes))
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show the record id column.")
}

// Query validates the flags and turns them into a service query.
func (o *PageOptions) Query() (app.Query, error) {
	if o.Page < 1 {
		return app.Query{}, fmt.Errorf("%w: --page must be >= 1", app.ErrInvalidQuery)
	}
	if !listing.ValidPerPage(o.PerPage) {
		return app.Query{}, fmt.Errorf("%w: --per-page must be one of %v", app.ErrInvalidQuery, listing.PageSizes)
	}
	return app.Query{Search: o.Search, Page: o.Page, PerPage: o.PerPage}, nil
}
