package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/contentpack/internal/app"
	"github.com/quantmind-br/contentpack/internal/config"
	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/manifest"
	"github.com/quantmind-br/contentpack/internal/registry"
	"github.com/quantmind-br/contentpack/internal/utils"
	"github.com/quantmind-br/contentpack/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds the state shared by the commands of one invocation
type cli struct {
	cfgFile  string
	verbose  bool
	progress bool
	v        *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "contentpack",
		Short: "Build the navigation manifest for a content pack",
		Long: `contentpack compiles the document registry of a content site into the
navigation manifest the site reads at runtime: document metadata, the
semester sidebar, the index page graph and prev/next/up links between units.

Every referenced identifier is checked against the document map; problems
are reported as warnings, or as an error with --strict.`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runBuild,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", fmt.Sprintf("config file (default is ./%s.yaml or %s)", config.ConfigName, config.ConfigFilePath()))
	flags.StringP("registry", "r", config.DefaultRegistryPath, "Document registry file (.json, .yaml)")
	flags.StringP("output", "o", config.DefaultOutputPath, "Manifest output path")
	flags.Bool("dry-run", false, "Build and validate without writing files")
	flags.Bool("strict", false, "Fail when validation reports dangling references")
	flags.Bool("compress", false, "Also write a zstd-compressed copy next to the manifest")
	flags.BoolVar(&c.progress, "progress", false, "Show a progress bar while classifying documents")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = c.v.BindPFlag("registry.path", flags.Lookup("registry"))
	_ = c.v.BindPFlag("output.path", flags.Lookup("output"))
	_ = c.v.BindPFlag("output.dry_run", flags.Lookup("dry-run"))
	_ = c.v.BindPFlag("output.compress", flags.Lookup("compress"))
	_ = c.v.BindPFlag("validation.strict", flags.Lookup("strict"))

	// Add subcommands
	rootCmd.AddCommand(c.watchCmd())
	rootCmd.AddCommand(c.validateCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (c *cli) loadConfig() (*config.Config, error) {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	}
	cfg, err := config.LoadFrom(c.v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (c *cli) newOrchestrator(cmd *cobra.Command, cfg *config.Config) (*app.Orchestrator, error) {
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: c.verbose,
	})

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		CommonOptions: domain.CommonOptions{
			Verbose:  c.verbose,
			DryRun:   cfg.Output.DryRun,
			Strict:   cfg.Validation.Strict,
			Compress: cfg.Output.Compress,
			Progress: c.progress,
		},
		Config:         cfg,
		Logger:         logger,
		ProgressWriter: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return orchestrator, nil
}

func (c *cli) runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	orchestrator, err := c.newOrchestrator(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := withSignals(cmd.Context(), cmd.ErrOrStderr())
	defer stop()

	_, err = orchestrator.Run(ctx)
	return err
}

// withSignals cancels the returned context on SIGINT or SIGTERM
func withSignals(parent context.Context, w io.Writer) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(w, "Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

func (c *cli) watchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the manifest whenever the registry changes",
		Long: `Builds the manifest, then keeps running and rebuilds it each time the
registry file is saved. Failed builds are logged and the watch continues.
Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			orchestrator, err := c.newOrchestrator(cmd, cfg)
			if err != nil {
				return err
			}

			ctx, stop := withSignals(cmd.Context(), cmd.ErrOrStderr())
			defer stop()

			return orchestrator.Watch(ctx, app.WatchOptions{Debounce: debounce})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", app.DefaultDebounce, "Wait this long after a change before rebuilding")
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Check an existing manifest for dangling references",
		Long: `Loads a manifest (default: the configured output path, plain or .zst)
and reports every identifier it references that is missing from its
document map. Exits non-zero only with --strict.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			path := cfg.Output.Path
			if len(args) == 1 {
				path = args[0]
			}

			orchestrator, err := c.newOrchestrator(cmd, cfg)
			if err != nil {
				return err
			}

			warnings, err := orchestrator.ValidateFile(cmd.Context(), path)
			out := cmd.OutOrStdout()
			for _, w := range warnings {
				fmt.Fprintf(out, "  - %s\n", w)
			}
			if err != nil {
				return err
			}

			if len(warnings) == 0 {
				fmt.Fprintf(out, "%s: OK\n", path)
			} else {
				fmt.Fprintf(out, "%s: %d warnings\n", path, len(warnings))
			}
			return nil
		},
	}
}

// classification is the classify command's JSON output
type classification struct {
	ID      string `json:"id"`
	Rule    string `json:"rule"`
	Subject string `json:"subject,omitempty"`
	domain.Document
}

func classifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <id> [source]",
		Short: "Show how a registry entry is classified",
		Long: `Prints the document record a registry entry would produce: its type and
the rule that chose it, semester, sidebar subject and unit position.`,
		Example: `  contentpack classify semester_1_c_notes_unit2
  contentpack classify semester_1_c semester1/c/index.html --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			entry := registry.Entry{}
			if len(args) == 2 {
				entry.Source = args[1]
			}

			_, rule := manifest.Explain(id, entry.Source)
			result := classification{
				ID:       id,
				Rule:     rule,
				Subject:  manifest.ExtractSubject(id),
				Document: manifest.NewDocument(id, entry),
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprintf(out, "id:       %s\n", result.ID)
			fmt.Fprintf(out, "type:     %s (%s)\n", result.Type, result.Rule)
			fmt.Fprintf(out, "semester: %d\n", result.Semester)
			if result.Subject != "" {
				fmt.Fprintf(out, "subject:  %s (%s)\n", result.Subject, manifest.FormatTitle(result.Subject))
			}
			if result.Unit != nil {
				fmt.Fprintf(out, "unit:     %s #%d\n", result.Unit.Course, result.Unit.Number)
			}
			fmt.Fprintf(out, "html:     %s\n", result.HTML)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func versionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get().JSON())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")
	return cmd
}
