package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theapemachine/webtool/pkg/browser"
	"github.com/theapemachine/webtool/pkg/service"
)

var (
	portFlag int
	hostFlag string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the web automation HTTP service",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := service.New(browser.Config{
				SearchURL: viper.GetString("endpoints.searxng"),
				Model:     viper.GetString("model.name"),
			})

			return srv.Listen(fmt.Sprintf(
				"%s:%d",
				viper.GetString("server.host"),
				viper.GetInt("server.port"),
			))
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&portFlag, "port", "p", 8000, "Port to serve on")
	serveCmd.Flags().StringVarP(&hostFlag, "host", "H", "0.0.0.0", "Host address to bind to")

	// Flags shadow the config file when set; otherwise server.host and
	// server.port from the config apply, then the flag defaults.
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
}

var longServe = `
Starts the HTTP service. Each inbound operation gets its own headless
browser session which is torn down when the request completes, whatever the
outcome.
`
