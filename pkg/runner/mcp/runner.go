package mcp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/jadwal/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// ParseTransport accepts http (the default for "") and stdio.
func ParseTransport(raw string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(raw))); t {
	case "", TransportHTTP:
		return TransportHTTP, nil
	case TransportStdio:
		return TransportStdio, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", raw)
	}
}

// Endpoint is where the streamable HTTP transport listens.
type Endpoint struct {
	Host string
	Port int
	Path string
	// CertFile and KeyFile switch the endpoint to HTTPS. Both or neither.
	CertFile string
	KeyFile  string
}

// Validate normalizes the path and checks port and TLS settings.
func (e *Endpoint) Validate() error {
	e.Host = strings.TrimSpace(e.Host)
	if e.Host == "" {
		e.Host = "127.0.0.1"
	}
	if e.Port < 0 || e.Port > 65535 {
		return fmt.Errorf("invalid http port %d", e.Port)
	}
	e.Path = "/" + strings.TrimLeft(strings.TrimSpace(e.Path), "/")
	if e.Path == "/" {
		e.Path = "/mcp"
	}
	e.CertFile, e.KeyFile = strings.TrimSpace(e.CertFile), strings.TrimSpace(e.KeyFile)
	if (e.CertFile == "") != (e.KeyFile == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	return nil
}

func (e Endpoint) tls() bool { return e.CertFile != "" }

// Addr is the host:port to listen on.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// URL is the address clients connect to once bound to a. Wildcard hosts are
// shown as the bound IP, or loopback when that is unspecified too.
func (e Endpoint) URL(a net.Addr) string {
	scheme := "http"
	if e.tls() {
		scheme = "https"
	}
	host, port := e.Host, strconv.Itoa(e.Port)
	if tcp, ok := a.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
		if host == "0.0.0.0" || host == "::" {
			host = "127.0.0.1"
			if tcp.IP != nil && !tcp.IP.IsUnspecified() {
				host = tcp.IP.String()
			}
		}
	}
	return scheme + "://" + net.JoinHostPort(host, port) + e.Path
}

// Runner coordinates MCP server startup.
type Runner struct {
	Service   *app.Service
	Name      string
	Version   string
	Transport Transport
	Endpoint  Endpoint
	// OnListening is called with the client URL once the HTTP listener is up.
	OnListening func(url string)
}

// Do serves until ctx is cancelled or stdin closes.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil || r.Service.Catalog == nil {
		return errors.New("mcp runner requires a timetable catalog")
	}
	name := r.Name
	if name == "" {
		name = "jadwal"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}
	srv := NewServer(name, version, NewService(r.Service))

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

// NewServer builds the MCP server with every read-only tool and resource
// registered.
func NewServer(name, version string, svc *Service) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read the school timetable: list teachers, classrooms and subjects, build the weekly grid for a teacher or class, and resolve single cells. Days are Mon..Fri; periods are named as in the timetable summary."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", r.Endpoint.Addr())
	if err != nil {
		return nil, err
	}
	if !r.Endpoint.tls() {
		return ln, nil
	}
	cert, err := tls.LoadX509KeyPair(r.Endpoint.CertFile, r.Endpoint.KeyFile)
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("load tls key pair: %w", err)
	}
	return tls.NewListener(ln, &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}), nil
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if err := r.Endpoint.Validate(); err != nil {
		return err
	}
	ln, err := r.listen()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(r.Endpoint.Path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	url := r.Endpoint.URL(ln.Addr())
	slog.Info("mcp: listening", "url", url)
	if r.OnListening != nil {
		r.OnListening(url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if err := httpSrv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
