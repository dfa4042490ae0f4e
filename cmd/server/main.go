package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bbnwebby/beyondbeauty/internal/auth"
	"github.com/bbnwebby/beyondbeauty/internal/config"
	"github.com/bbnwebby/beyondbeauty/internal/logging"
	"github.com/bbnwebby/beyondbeauty/internal/server"
)

var addr string

var rootCmd = &cobra.Command{
	Use:          "bbn-server",
	Short:        "Beyond Beauty Network web server",
	Long:         "Serves the Beyond Beauty Network marketing site: landing page, contact page, sitemap and static assets.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.New()

		cfg, err := config.New()
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Addr = addr
		}

		s := server.New(cfg, auth.NewSessionProvider())
		s.RegisterRoutes()
		s.Start(cfg.Addr)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides APP_ADDR)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
