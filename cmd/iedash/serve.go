// serve.go powers 'iedash serve', hosting the dashboard over HTTP.
package main

import (
	"github.com/spf13/cobra"

	"github.com/example/iedash/internal/config"
	"github.com/example/iedash/internal/server"
)

func newServeCommand(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Example: `  # Serve on the default port
  iedash serve

  # Bind to a specific address
  iedash serve --listen 127.0.0.1:9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			log, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			srv, err := server.New(server.Config{
				ListenAddr: opts.ListenAddr,
				Logger:     log,
			})
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&opts.ListenAddr, "listen", opts.ListenAddr, "Address to serve the dashboard on (host:port)")
	return cmd
}
