package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/commands/options"
	"tableflip.dev/jadwal/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the timetable through read-only tools
(list_teachers, list_classrooms, list_subjects, get_timetable, resolve_cell)
and resources (jadwal://summary, jadwal://teachers/{id}).`,
		Example: `
jadwal mcp
jadwal mcp --transport stdio
jadwal mcp --http-host 0.0.0.0 --http-port 9000
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := mcp.ParseTransport(mo.Transport)
			if err != nil {
				return err
			}
			endpoint := mo.Endpoint()
			if err := endpoint.Validate(); err != nil {
				return err
			}

			svc, _, err := openService(cmd.Context())
			if err != nil {
				return err
			}

			r := mcp.Runner{
				Service:   svc,
				Name:      "jadwal",
				Version:   version,
				Transport: transport,
				Endpoint:  endpoint,
				OnListening: func(url string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", url)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
