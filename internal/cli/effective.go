package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"maven-depman/internal/app"
)

type effectiveOptions struct {
	Spec      string
	Profiles  []string
	OutputDir string
}

func newEffectiveCommand() *cobra.Command {
	opts := effectiveOptions{}
	cmd := &cobra.Command{
		Use:   "effective",
		Short: "Print the effective dependency management table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEffective(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Project spec path")
	cmd.Flags().StringSliceVar(&opts.Profiles, "profile", nil, "Extra property profile paths")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Directory for the report file (optional)")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("profiles", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runEffective(ctx context.Context, cmd *cobra.Command, opts effectiveOptions) error {
	service := newAppService()
	result, err := service.Effective(ctx, app.EffectiveRequest{
		SpecPath:  resolveString(cmd, opts.Spec, "spec", "spec"),
		Profiles:  resolveStrings(cmd, opts.Profiles, "profiles", "profile"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		line := fmt.Sprintf("%s:%s:%s", entry.GroupID, entry.ArtifactID, entry.Version)
		if entry.Classifier != "" {
			line += ":" + entry.Classifier
		}
		fmt.Println(line)
	}
	return nil
}
