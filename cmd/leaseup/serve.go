package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/LLEndaya/LeaseUp/internal/app"
	"github.com/LLEndaya/LeaseUp/internal/config"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			utils.InitLogger(cfg.AppName, cfg.LogLevel)
			if port != "" {
				cfg.AppPort = port
			}

			application, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			router := app.NewRouter(cfg, application.Store, application.Services)

			co := cors.New(cors.Options{
				AllowedOrigins:   []string{cfg.AppUrl},
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"Content-Type", "Accept", "X-Requested-With"},
				AllowCredentials: true,
			})

			utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
			return http.ListenAndServe(":"+cfg.AppPort, co.Handler(router))
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "override APP_PORT")
	return cmd
}
