package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/runner/mcp"
)

// MCPOptions configure the mcp command's transport.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", string(mcp.TransportHTTP),
		"Transport to use: http or stdio.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1",
		"Host or interface for the HTTP transport.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8081,
		"Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp",
		"HTTP endpoint path.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "",
		"TLS certificate file, serves HTTPS together with --http-tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "",
		"TLS private key file.")
}

// Endpoint collects the HTTP flags. Call Validate on the result.
func (o *MCPOptions) Endpoint() mcp.Endpoint {
	return mcp.Endpoint{
		Host:     o.Host,
		Port:     o.Port,
		Path:     o.Path,
		CertFile: o.TLSCert,
		KeyFile:  o.TLSKey,
	}
}
