package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"maven-depman/internal/app"
)

type generateOptions struct {
	Spec      string
	Profiles  []string
	Pom       string
	Output    string
	ReportDir string
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve dependency management and rewrite the target pom",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Project spec path")
	cmd.Flags().StringSliceVar(&opts.Profiles, "profile", nil, "Extra property profile paths")
	cmd.Flags().StringVar(&opts.Pom, "pom", "", "Target pom path (overrides the spec)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output pom path (defaults to in-place)")
	cmd.Flags().StringVar(&opts.ReportDir, "report-dir", "", "Directory for the effective management report")

	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("profiles", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("pom", cmd.Flags().Lookup("pom"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("report_dir", cmd.Flags().Lookup("report-dir"))

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		SpecPath:  resolveString(cmd, opts.Spec, "spec", "spec"),
		Profiles:  resolveStrings(cmd, opts.Profiles, "profiles", "profile"),
		Pom:       resolveString(cmd, opts.Pom, "pom", "pom"),
		Output:    resolveString(cmd, opts.Output, "output", "output"),
		ReportDir: resolveString(cmd, opts.ReportDir, "report_dir", "report-dir"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("generated: %s (%d managed) -> %s\n", result.ProjectName, result.Managed, result.PomPath)
	return nil
}
