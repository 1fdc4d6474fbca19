package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blimu-dev/tseo-gen/pkg/config"
	"github.com/blimu-dev/tseo-gen/pkg/generator"
	"github.com/blimu-dev/tseo-gen/pkg/openapi"
)

// RunGenerateParams carries everything the generate command collected
type RunGenerateParams struct {
	// ConfigPath is an optional YAML config file; flags override it
	ConfigPath string
	Overrides  config.Overrides
	// DryRun prints the units to Stdout instead of writing them
	DryRun  bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// RunGenerate resolves the configuration (environment, then config file,
// then flags) and runs the generator.
func RunGenerate(p RunGenerateParams) error {
	var (
		cfg *config.Config
		err error
	)
	if p.ConfigPath != "" {
		cfg, err = config.Load(p.ConfigPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return err
	}
	cfg.Apply(p.Overrides)
	cfg.Normalize()
	cfg.OutDir = absPath(cfg.OutDir)

	svc := generator.NewService(newLogger(p.Stderr, p.Verbose))
	if p.DryRun {
		out := p.Stdout
		if out == nil {
			out = os.Stdout
		}
		return svc.GenerateTo(cfg, generator.WriterSink{W: out})
	}
	return svc.GenerateFromConfig(cfg)
}

// RunValidate runs the full OpenAPI validation on input
func RunValidate(input string, stdout io.Writer) error {
	if err := openapi.ValidateDocument(input); err != nil {
		return err
	}
	if stdout != nil {
		fmt.Fprintf(stdout, "%s is valid\n", input)
	}
	return nil
}

// shortFlags maps the two-letter short forms, which pflag cannot express,
// to their long names.
var shortFlags = map[string]string{
	"-da": "--api-dir",
	"-dr": "--routes-dir",
}

// valueFlags lists every flag that consumes the following argument
var valueFlags = map[string]bool{}

func init() {
	for _, f := range []string{
		"-b", "--base-name",
		"-da", "--api-dir",
		"-dr", "--routes-dir",
		"--model-dir",
		"-c", "--config",
		"--out",
		"--include-tags", "--exclude-tags",
	} {
		valueFlags[f] = true
	}
}

// NormalizeArgs rewrites -da and -dr to their long names and drops a
// trailing value flag that has no value, printing a note to w, so that the
// setting keeps its default.
func NormalizeArgs(args []string, w io.Writer) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if i == len(args)-1 && valueFlags[arg] {
			if w != nil {
				fmt.Fprintf(w, "%s requires an argument.\n", arg)
			}
			break
		}
		if long, ok := shortFlags[arg]; ok {
			out = append(out, long)
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			if long, known := shortFlags[name]; known {
				out = append(out, long+"="+value)
				continue
			}
		}
		out = append(out, arg)
	}
	return out
}
