package cli

import (
	"github.com/spf13/cobra"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	"github.com/yanqian/sunsafe/pkg/apiclient"
)

func (a *app) cancerCmd() *cobra.Command {
	var gender, ageGroup string
	cmd := &cobra.Command{
		Use:   "cancer",
		Short: "Print the incidence series for a sex and age bracket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			q := apiclient.CancerQuery{Gender: lookup.Sex(gender), AgeGroup: lookup.AgeGroup(ageGroup)}
			series, err := client.CancerData(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), series)
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "", "Sex of the series (male, female)")
	cmd.Flags().StringVar(&ageGroup, "age-group", "", "Age bracket, e.g. 20-29")
	return cmd
}

func (a *app) uvCmd() *cobra.Command {
	var postcode string
	cmd := &cobra.Command{
		Use:   "uv",
		Short: "Print the hourly UV series for a postcode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			sess := apiclient.NewSession()
			sess.SetPostcode(postcode)
			series, err := client.UVDataForSession(cmd.Context(), sess)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), series)
		},
	}
	cmd.Flags().StringVar(&postcode, "postcode", "", "Postcode to look up")
	return cmd
}

func (a *app) skinToneCmd() *cobra.Command {
	var tone string
	cmd := &cobra.Command{
		Use:   "skin-tone",
		Short: "Print the sun protection advice for a skin tone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			advice, err := client.SkinToneRecommendation(cmd.Context(), apiclient.SkinToneQuery{SkinTone: lookup.SkinTone(tone)})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), lookup.RecommendationResponse{Recommendation: advice})
		},
	}
	cmd.Flags().StringVar(&tone, "tone", "", "Skin tone (fair, beige, light-brown, brown, dark-brown)")
	return cmd
}

func (a *app) clothingCmd() *cobra.Command {
	var uvIndex, temperature float64
	cmd := &cobra.Command{
		Use:   "clothing",
		Short: "Print clothing advice for a UV index and temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			q := apiclient.ClothingQuery{
				UVIndex:     changedFloat(cmd, "uv-index", uvIndex),
				Temperature: changedFloat(cmd, "temperature", temperature),
			}
			out, err := client.ClothingRecommendation(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().Float64Var(&uvIndex, "uv-index", 0, "UV index")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "Air temperature in degrees Celsius")
	return cmd
}

func (a *app) sunscreenCmd() *cobra.Command {
	var skinType int
	var uvIndex float64
	cmd := &cobra.Command{
		Use:   "sunscreen",
		Short: "Print sunscreen advice for a skin type (1-5) and UV index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			q := apiclient.SunscreenQuery{
				SkinType: skinType,
				UVIndex:  changedFloat(cmd, "uv-index", uvIndex),
			}
			out, err := client.SunscreenRecommendation(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&skinType, "skin-type", 0, "Skin type from 1 (fair) to 5 (dark brown)")
	cmd.Flags().Float64Var(&uvIndex, "uv-index", 0, "UV index")
	return cmd
}

func (a *app) recommendationCmd() *cobra.Command {
	var tone, postcode string
	cmd := &cobra.Command{
		Use:   "recommendation",
		Short: "Print sunscreen advice for a skin tone at a postcode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			sess := apiclient.NewSession()
			sess.SetPostcode(postcode)
			out, err := client.RecommendationForSession(cmd.Context(), sess, lookup.SkinTone(tone))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&tone, "tone", "", "Skin tone label or skin type 1-5")
	cmd.Flags().StringVar(&postcode, "postcode", "", "Postcode whose peak UV sizes the advice")
	return cmd
}

// changedFloat returns nil for flags the user did not pass, so zero stays a
// valid explicit value.
func changedFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return apiclient.Float(v)
}
