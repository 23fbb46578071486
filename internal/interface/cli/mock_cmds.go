package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/yanqian/sunsafe/pkg/apiclient"
)

func (a *app) mockCancerCmd() *cobra.Command {
	var gender, ageGroup string
	var seed uint64
	cmd := &cobra.Command{
		Use:   "mock-cancer",
		Short: "Print a generated incidence series without calling the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(a.now().UnixNano())
			}
			rng := rand.New(rand.NewPCG(seed, seed))
			return printJSON(cmd.OutOrStdout(), apiclient.MockCancerData(gender, ageGroup, rng))
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "", "Sex of the series (male, female)")
	cmd.Flags().StringVar(&ageGroup, "age-group", "", "Age bracket, e.g. 60-69")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible noise")
	return cmd
}

func (a *app) mockUVCmd() *cobra.Command {
	var location string
	cmd := &cobra.Command{
		Use:   "mock-uv",
		Short: "Print a canned UV reading without calling the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), apiclient.MockUVSnapshot(location, a.now()))
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "Location label")
	return cmd
}
