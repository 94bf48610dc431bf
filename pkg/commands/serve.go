package commands

import (
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/jadwal/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	var (
		addr      string
		origins   string
		rateLimit int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the timetable as a read-only JSON API",
		Long: `Serve the timetable over HTTP.

Endpoints: /health, /api/summary, /api/teachers[/:id], /api/classrooms,
/api/subjects (search, page, per_page), /api/timetable (mode, id),
/api/timetable/cell (day, period, mode, id) and /api/options (mode, search).`,
		Example: `
jadwal serve
jadwal serve --addr :8080 --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, cfg, err := openService(ctx)
			if err != nil {
				return err
			}
			s := serve.Server{
				Service:      svc,
				Addr:         cfg.ServeAddr(),
				Watch:        cfg.Watch(),
				AllowOrigins: origins,
				RateLimit:    rateLimit,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "jadwal API listening on http://%s\n", a)
				},
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address, host:port")
	cmd.Flags().StringVar(&origins, "cors-origins", "*", "comma separated CORS origins")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 120, "requests per minute per client on /api, 0 disables")
	_ = viper.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))

	topLevel.AddCommand(cmd)
}
