package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cli "github.com/blimu-dev/tseo-gen/internal/cli"
	"github.com/blimu-dev/tseo-gen/pkg/config"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(cli.NormalizeArgs(os.Args[1:], os.Stderr))

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath  string
		baseName    string
		apiDir      string
		routesDir   string
		modelDir    string
		outDir      string
		includeTags []string
		excludeTags []string
		dryRun      bool
		validate    bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "tseo-gen [OpenAPI YAML file]",
		Short: "Generate Express delegates, controller and routers from an OpenAPI document",
		Example: `  tseo-gen api.yaml
  tseo-gen api.yaml -b Shop -da src/api -dr src/routes
  tseo-gen -c tseo.yaml --dry-run`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && configPath == "" {
				return cmd.Help()
			}

			var o config.Overrides
			if len(args) == 1 {
				o.Spec = &args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("base-name") {
				o.BaseName = &baseName
			}
			if flags.Changed("api-dir") {
				o.APIDir = &apiDir
			}
			if flags.Changed("routes-dir") {
				o.RoutesDir = &routesDir
			}
			if flags.Changed("model-dir") {
				o.ModelDir = &modelDir
			}
			if flags.Changed("out") {
				o.OutDir = &outDir
			}
			if flags.Changed("include-tags") {
				o.IncludeTags = includeTags
			}
			if flags.Changed("exclude-tags") {
				o.ExcludeTags = excludeTags
			}
			if flags.Changed("validate") {
				o.ValidateSpec = &validate
			}

			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath: configPath,
				Overrides:  o,
				DryRun:     dryRun,
				Verbose:    verbose,
				Stdout:     stdout,
				Stderr:     stderr,
			})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a tseo-gen YAML config")
	cmd.Flags().StringVarP(&baseName, "base-name", "b", "Generated", "Prefix of the controller and aggregator router classes")
	cmd.Flags().StringVar(&apiDir, "api-dir", "src/api", "Delegate and controller output directory (short: -da)")
	cmd.Flags().StringVar(&routesDir, "routes-dir", "src/routes", "Router output directory (short: -dr)")
	cmd.Flags().StringVar(&modelDir, "model-dir", "../model", "Import prefix of model types, seen from the API directory")
	cmd.Flags().StringVar(&outDir, "out", ".", "Output root the directories are relative to")
	cmd.Flags().StringArrayVar(&includeTags, "include-tags", nil, "Regex patterns for tags to include")
	cmd.Flags().StringArrayVar(&excludeTags, "exclude-tags", nil, "Regex patterns for tags to exclude")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generated files instead of writing them")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate the document against OpenAPI 3 before generating")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log skipped path item keys and other debug details")
	cmd.Flags().SetNormalizeFunc(wordSepNormalizeFunc)

	cmd.AddCommand(newValidateCmd(stdout))
	return cmd
}

func newValidateCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [OpenAPI YAML file]",
		Short: "Validate an OpenAPI document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(args[0], stdout)
		},
	}
}

// wordSepNormalizeFunc accepts api_dir and apiDir style spellings of flags
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ReplaceAll(name, "_", "-")
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return pflag.NormalizedName(b.String())
}
