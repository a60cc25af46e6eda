package commands

import (
	"github.com/spf13/cobra"

	"github.com/de-tools/report-lab/pkg/models/domain"
	"github.com/de-tools/report-lab/pkg/services/config"
)

// profileFlags are shared by every command that needs a resolved report
// profile: an optional profiles file, a profile name, and seed/rows
// overrides.
type profileFlags struct {
	profilesPath string
	profile      string
	seed         int64
	rows         int
}

func (pf *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.profilesPath, "profiles", "", "Path to the profiles file (ini)")
	cmd.Flags().StringVar(&pf.profile, "profile", "default", "Profile name to use")
	cmd.Flags().Int64Var(&pf.seed, "seed", config.DefaultSeed, "Seed override for the generator")
	cmd.Flags().IntVar(&pf.rows, "rows", config.DefaultRows, "Row count override for the generator")
}

func (pf *profileFlags) registry() (config.Registry, error) {
	if pf.profilesPath == "" {
		return config.NewDefaultRegistry(), nil
	}
	return config.NewRegistry(pf.profilesPath)
}

func (pf *profileFlags) resolve(cmd *cobra.Command) (domain.Profile, error) {
	registry, err := pf.registry()
	if err != nil {
		return domain.Profile{}, err
	}

	profile, err := registry.GetProfile(cmd.Context(), pf.profile)
	if err != nil {
		return domain.Profile{}, err
	}

	if cmd.Flags().Changed("seed") {
		profile.Seed = pf.seed
	}
	if cmd.Flags().Changed("rows") {
		profile.Rows = pf.rows
	}

	return profile, nil
}
