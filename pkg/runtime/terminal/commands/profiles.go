package commands

import (
	"fmt"

	"github.com/de-tools/report-lab/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	profilesPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List report profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilesPath, "profiles", "", "Path to the profiles file (ini)")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	registry := config.NewDefaultRegistry()
	if pc.profilesPath != "" {
		var err error
		registry, err = config.NewRegistry(pc.profilesPath)
		if err != nil {
			return fmt.Errorf("failed to load profiles from %s: %w", pc.profilesPath, err)
		}
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles found")
		return nil
	}

	for _, profile := range profiles {
		fmt.Fprintf(cmd.OutOrStdout(), "Name: `%s`, Seed: %d, Rows: %d, Format: %s\n",
			profile.Name, profile.Seed, profile.Rows, profile.Format)
	}

	return nil
}
