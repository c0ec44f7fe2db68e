// Package main implements the envproof CLI: validate an environment against
// a declarative schema file, generate .env.example documentation, and
// scaffold new schema files.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	envproof "github.com/jayantpathariya/envproof"
	"github.com/jayantpathariya/envproof/example"
	"github.com/jayantpathariya/envproof/report"
	"github.com/jayantpathariya/envproof/schemafile"
)

// version is set at build time.
var version = "0.1.0"

var log zerolog.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "envproof",
		Short: "envproof - validate environment variables against a schema",
		Long: `envproof validates a set of environment variables against a declarative
schema, producing either a fully-typed result or an itemized error report.

Schemas are YAML files declaring each variable's type, refinements,
defaults, and documentation metadata.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCheckCmd() *cobra.Command {
	var (
		schemaPath string
		envFiles   []string
		expand     bool
		strict     bool
		reporter   string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the current environment against the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("schema", schemaPath).Msg("loading schema")
			schema, err := schemafile.Load(schemaPath)
			if err != nil {
				return err
			}
			log.Debug().
				Int("fields", len(schema)).
				Strs("env_files", envFiles).
				Bool("strict", strict).
				Msg("validating environment")

			res, err := envproof.ValidateEnv(schema, envproof.EnvOptions{
				DotenvFiles: envFiles,
				ExpandVars:  expand,
				Strict:      strict,
			})
			if err != nil {
				return err
			}
			if !res.Success {
				fmt.Fprintln(os.Stderr, report.Render(report.Format(reporter), res.Errors))
				os.Exit(1)
			}
			if report.Format(reporter) == report.FormatJSON {
				fmt.Println(report.JSON(nil))
			} else {
				fmt.Println(report.Pretty(nil))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "env.schema.yaml", "Schema file to validate against")
	cmd.Flags().StringArrayVarP(&envFiles, "env-file", "f", nil, "Dotenv files layered under the environment (repeatable, later wins)")
	cmd.Flags().BoolVar(&expand, "expand", false, "Expand ${VAR} references in dotenv values")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject variables not declared in the schema")
	cmd.Flags().StringVarP(&reporter, "reporter", "r", "pretty", "Error report format: pretty, json or minimal")

	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		schemaPath string
		output     string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a .env.example file from the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := schemafile.Load(schemaPath)
			if err != nil {
				return err
			}
			content := example.Generate(schema)
			if output == "-" {
				fmt.Print(content)
				return nil
			}
			if err := writeFile(output, content, force); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d variables)\n", output, len(schema))
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "env.schema.yaml", "Schema file to generate from")
	cmd.Flags().StringVarP(&output, "output", "o", ".env.example", `Output path ("-" for stdout)`)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the output file if it exists")

	return cmd
}

func newInitCmd() *cobra.Command {
	var (
		schemaPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter schema file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeFile(schemaPath, schemafile.Starter, force); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", schemaPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "env.schema.yaml", "Schema file to create")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the schema file if it exists")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the envproof version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("envproof %s\n", version)
		},
	}
}

// writeFile refuses to clobber existing files unless force is set.
func writeFile(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
