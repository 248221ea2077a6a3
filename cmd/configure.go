package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexlume/fibercat/internal/configurator"
	"github.com/nexlume/fibercat/internal/model"
)

type configureResult struct {
	Config   model.CableConfiguration  `json:"config"`
	Profile  model.Profile             `json:"profile,omitempty"`
	Problems []string                  `json:"problems"`
	Summary  []configurator.SummaryRow `json:"summary"`
	SavedID  string                    `json:"saved_id,omitempty"`
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Build a custom cable configuration from a profile or application",
	Long:  "Starts from the default build, applies the application's profile and/or an explicit profile, then any per-field flags. Prints the summary and what is still missing.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		conf, err := initConfigurator()
		if err != nil {
			return err
		}

		res, err := buildConfiguration(cmd, conf)
		if err != nil {
			return err
		}

		if name, _ := cmd.Flags().GetString("save"); name != "" {
			if len(res.Problems) > 0 {
				zap.L().Warn("saving an incomplete configuration", zap.Strings("problems", res.Problems))
			}
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			saved := &model.SavedConfiguration{Name: name, Profile: res.Profile, Config: res.Config}
			if err := st.SaveConfiguration(ctx, saved); err != nil {
				return eris.Wrap(err, "save configuration")
			}
			res.SavedID = saved.ID
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		formatSummary(out, res.Summary, res.Problems)
		if res.SavedID != "" {
			fmt.Fprintf(out, "saved as %s\n", res.SavedID)
		}
		return nil
	},
}

// buildConfiguration applies the command's flags in wizard order. An
// explicit --profile wins over the one chosen by --application.
func buildConfiguration(cmd *cobra.Command, conf *configurator.Configurator) (*configureResult, error) {
	flags := cmd.Flags()
	app, _ := flags.GetString("application")
	profile, _ := flags.GetString("profile")
	fiber, _ := flags.GetString("fiber-type")
	connA, _ := flags.GetString("connector-a")
	connB, _ := flags.GetString("connector-b")
	jacket, _ := flags.GetString("jacket")
	length, _ := flags.GetFloat64("length")

	c := configurator.DefaultConfiguration()
	res := &configureResult{}

	var err error
	if app != "" {
		c, res.Profile, err = conf.SelectApplication(c, model.Application(app))
		if err != nil {
			return nil, err
		}
	}
	if profile != "" {
		c, err = conf.ApplyProfile(c, model.Profile(profile))
		if err != nil {
			return nil, err
		}
		res.Profile = model.Profile(profile)
	}
	if fiber != "" {
		c.FiberType = fiber
	}
	if connA != "" {
		if c, err = configurator.SelectConnector(c, configurator.SideA, connA); err != nil {
			return nil, err
		}
	}
	if connB != "" {
		if c, err = configurator.SelectConnector(c, configurator.SideB, connB); err != nil {
			return nil, err
		}
	}
	if jacket != "" {
		c.JacketType = jacket
	}
	if length > 0 {
		c.Length = length
	}

	res.Config = c
	res.Problems = configurator.Problems(c)
	if res.Problems == nil {
		res.Problems = []string{}
	}
	res.Summary = configurator.Summary(c)
	return res, nil
}

func init() {
	f := configureCmd.Flags()
	f.String("application", "", "application (data-center, ftth, 5g, enterprise, industrial, custom)")
	f.String("profile", "", "profile (patch-cord, drop-cable, trunk, breakout, closure-tail)")
	f.String("fiber-type", "", "fiber type (e.g. OS2, OM4)")
	f.String("connector-a", "", "connector on end A (e.g. LC/UPC)")
	f.String("connector-b", "", "connector on end B")
	f.String("jacket", "", "jacket rating (e.g. OFNP, LSZH)")
	f.Float64("length", 0, "length in meters")
	f.String("save", "", "save the configuration under this name")
	f.Bool("json", false, "print the result as JSON")
	rootCmd.AddCommand(configureCmd)
}
