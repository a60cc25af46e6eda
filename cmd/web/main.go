package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/report-lab/pkg/server"
	"github.com/de-tools/report-lab/pkg/services/config"
	"github.com/de-tools/report-lab/pkg/services/dataset"
	"github.com/de-tools/report-lab/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var profilesPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for report-lab",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", "",
		"Path to the report profiles file (ini); the built-in default profile is used when omitted")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry := config.NewDefaultRegistry()
	if profilesPath != "" {
		var err error
		registry, err = config.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to load profiles from %s: %w", profilesPath, err)
		}
		logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)
	}

	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Seed: %d, Rows: %d", profile.Name, profile.Seed, profile.Rows)
	}

	gen, err := dataset.NewGenerator(dataset.DefaultParams())
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "8080"
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Registry: registry,
			Reports:  report.NewService(gen),
		},
	})

	return api.Start()
}
