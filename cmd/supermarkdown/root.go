package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vakra-dev/supermarkdown"
	"github.com/vakra-dev/supermarkdown/core/selector"
)

const version = "2.0.0"

// Flag variables.
var (
	flagHeadingStyle string
	flagLinkStyle    string
	flagCodeFence    string
	flagBullet       string
	flagBaseURL      string
	flagExclude      []string
	flagInclude      []string
	flagVerbose      bool
	flagVersion      bool
)

var rootCmd = &cobra.Command{
	Use:   "supermarkdown [FILE]",
	Short: "Convert HTML to Markdown",
	Long: `supermarkdown converts HTML documents into Markdown tuned for LLM input.

If FILE is omitted or "-", input is read from stdin. Markdown is written
to stdout.

Examples:
  supermarkdown page.html > page.md
  curl -s https://example.com | supermarkdown
  supermarkdown --exclude "nav,.ad,#sidebar" page.html
  supermarkdown --heading-style setext --link-style referenced page.html`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagHeadingStyle, "heading-style", "atx", "Heading style: atx or setext")
	rootCmd.Flags().StringVar(&flagLinkStyle, "link-style", "inline", "Link style: inline or referenced")
	rootCmd.Flags().StringVar(&flagCodeFence, "code-fence", "`", "Code fence character: ` or ~")
	rootCmd.Flags().StringVar(&flagBullet, "bullet", "-", "Bullet marker: -, *, or +")
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Base URL for resolving relative links")
	rootCmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "CSS selectors to exclude (comma-separated)")
	rootCmd.Flags().StringSliceVar(&flagInclude, "include", nil, "CSS selectors to always keep (comma-separated)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log conversion diagnostics to stderr")
	rootCmd.Flags().BoolVarP(&flagVersion, "version", "v", false, "Print version information")

	// Help and version go to stderr so stdout stays clean for markdown.
	rootCmd.SetOut(os.Stderr)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Run 'supermarkdown --help' for usage information.")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagVersion {
		fmt.Fprintf(os.Stderr, "supermarkdown %s\n", version)
		return nil
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	var logger *zap.SugaredLogger
	if flagVerbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer zl.Sync() //nolint:errcheck // stderr sync failure is not actionable
		logger = zl.Sugar()

		// Report selectors the library will silently drop.
		set := selector.Compile(flagExclude, flagInclude)
		for _, dropped := range set.Dropped {
			logger.Warnw("invalid selector dropped", "selector", dropped)
		}
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	start := time.Now()
	markdown := supermarkdown.ConvertWithOptions(input, opts)
	if logger != nil {
		logger.Infow("converted",
			"input_bytes", len(input),
			"output_bytes", len(markdown),
			"elapsed", time.Since(start),
		)
	}

	if _, err := io.WriteString(os.Stdout, markdown); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// buildOptions maps flag values to conversion options. The CLI is stricter
// than the library: unknown enum values are argument errors here, while the
// library would silently fall back to defaults.
func buildOptions() (*supermarkdown.Options, error) {
	opts := supermarkdown.NewOptions()

	switch flagHeadingStyle {
	case "atx", "setext":
		opts.WithHeadingStyle(supermarkdown.ParseHeadingStyle(flagHeadingStyle))
	default:
		return nil, fmt.Errorf("unknown heading style: %s", flagHeadingStyle)
	}

	switch flagLinkStyle {
	case "inline", "referenced", "reference":
		opts.WithLinkStyle(supermarkdown.ParseLinkStyle(flagLinkStyle))
	default:
		return nil, fmt.Errorf("unknown link style: %s", flagLinkStyle)
	}

	switch flagCodeFence {
	case "`", "backtick":
		opts.WithCodeFence('`')
	case "~", "tilde":
		opts.WithCodeFence('~')
	default:
		return nil, fmt.Errorf("unknown code fence: %s", flagCodeFence)
	}

	switch flagBullet {
	case "-", "dash":
		opts.WithBulletMarker('-')
	case "*", "asterisk":
		opts.WithBulletMarker('*')
	case "+", "plus":
		opts.WithBulletMarker('+')
	default:
		return nil, fmt.Errorf("unknown bullet marker: %s", flagBullet)
	}

	opts.WithBaseURL(flagBaseURL)
	opts.WithExcludeSelectors(flagExclude)
	opts.WithIncludeSelectors(flagInclude)
	return opts, nil
}

// readInput reads the input file, or stdin when the argument is absent
// or "-".
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
