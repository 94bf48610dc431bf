package options

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions select between the human table output and JSON.
type OutputOptions struct {
	JSON bool
	// Out receives JSON error documents, color.Output when nil.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

type errorDoc struct {
	Error string `json:"error"`
}

// HandleError passes err through in text mode. In JSON mode it is written as
// {"error": "..."} and swallowed so scripts always get a parseable document.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !o.JSON {
		return err
	}
	out := o.Out
	if out == nil {
		out = color.Output
	}
	return json.NewEncoder(out).Encode(errorDoc{Error: err.Error()})
}
