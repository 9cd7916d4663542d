package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/buildreport/internal/config"
	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/model"
	"github.com/AndreyAkinshin/buildreport/internal/output"
	"github.com/AndreyAkinshin/buildreport/internal/report"
	"github.com/AndreyAkinshin/buildreport/internal/testparser"
)

// stdinPath names standard input as the report source.
const stdinPath = "-"

// inputReport is the native report document format.
const inputReport = "report"

// printOptions holds the flags of the print command.
type printOptions struct {
	verbosity string
	locale    string
	color     string
	format    string
	output    string
	input     string
	quiet     bool
	verbose   bool
}

func (a *app) newPrintCommand() *cobra.Command {
	opts := &printOptions{}

	cmd := &cobra.Command{
		GroupID: "report",
		Use:     "print <file|->",
		Short:   "Print a build report",
		Long: `Print a build report.
The report is a YAML or JSON file listing task entries; use - to read it from standard input.`,
		Args: exactArgs(1),
		Example: `  buildreport print report.yaml
  buildreport print --format xlsx --output report.xlsx report.yaml
  go test -json ./... | buildreport print --input go-test-json -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrint(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.verbosity, "verbosity", "", "Verbosity: quiet, minimal, normal, verbose, diagnostic")
	f.StringVar(&opts.locale, "locale", "", "Language of column titles, e.g. en or zh-CN")
	f.StringVar(&opts.color, "color", "", "Color output: auto, always, never")
	f.StringVar(&opts.format, "format", "", "Output format: console, markdown, xlsx")
	f.StringVarP(&opts.output, "output", "o", "", "Output file (required for xlsx)")
	f.StringVar(&opts.input, "input", inputReport, "Input format: report, go-test, go-test-json")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Same as --verbosity quiet")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Same as --verbosity verbose")
	return cmd
}

func (a *app) runPrint(cmd *cobra.Command, opts *printOptions, source string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := applyPrintFlags(cmd, cfg, opts); err != nil {
		return err
	}

	a.out.SetColorMode(cfg.ColorMode())
	a.out.SetQuiet(cfg.VerbosityLevel() == model.VerbosityQuiet)

	r, err := a.loadReport(source, opts.input)
	if err != nil {
		return err
	}

	printerOpts := report.PrinterOptions{
		Verbosity: cfg.VerbosityLevel(),
		Language:  cfg.Language(),
	}
	a.log.WithFields(logrus.Fields{
		"entries":   r.Len(),
		"format":    cfg.Format,
		"verbosity": printerOpts.Verbosity,
		"language":  printerOpts.Language,
	}).Debug("rendering report")

	switch cfg.Format {
	case config.FormatMarkdown:
		return a.writeMarkdown(r, printerOpts, opts.output)
	case config.FormatXLSX:
		if opts.output == "" {
			return errors.InvalidArgumentf("--output", "required for format %q", config.FormatXLSX)
		}
		if err := report.NewExcelExporter(printerOpts).Export(r, opts.output); err != nil {
			return err
		}
		a.out.Info("Wrote %s", opts.output)
		return nil
	default:
		if err := report.NewPrinter(a.out, printerOpts).Write(r); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
		return nil
	}
}

// applyPrintFlags overrides config values with the flags the user set.
func applyPrintFlags(cmd *cobra.Command, cfg *config.Config, opts *printOptions) error {
	f := cmd.Flags()
	if countTrue(opts.quiet, opts.verbose, f.Changed("verbosity")) > 1 {
		return errors.InvalidArgumentf("flags", "only one of --quiet, --verbose or --verbosity may be set")
	}
	if f.Changed("verbosity") {
		if _, ok := model.ParseVerbosity(opts.verbosity); !ok {
			return errors.InvalidArgumentf("--verbosity", "unknown verbosity %q", opts.verbosity)
		}
		cfg.Verbosity = opts.verbosity
	}
	if opts.quiet {
		cfg.Verbosity = model.VerbosityQuiet.String()
	}
	if opts.verbose {
		cfg.Verbosity = model.VerbosityVerbose.String()
	}
	if f.Changed("color") {
		if _, ok := output.ParseColorMode(opts.color); !ok {
			return errors.InvalidArgumentf("--color", "unknown color mode %q", opts.color)
		}
		cfg.Color = opts.color
	}
	if f.Changed("locale") {
		cfg.Locale = opts.locale
	}
	if f.Changed("format") {
		if err := config.ValidateFormat(opts.format); err != nil {
			return errors.InvalidArgumentf("--format", "%v", err)
		}
		cfg.Format = opts.format
	}
	return nil
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, path, warnings, err := config.Resolve(a.configPath, a.workDir)
	for _, w := range warnings {
		a.out.Warning("%s", w)
	}
	if err != nil {
		return nil, err
	}
	if path == "" {
		a.log.Debug("no config file found, using defaults")
	} else {
		a.log.WithField("path", path).Debug("loaded config")
	}
	return cfg, nil
}

func (a *app) loadReport(source, input string) (*model.Report, error) {
	if input == inputReport {
		if source == stdinPath {
			a.log.Debug("reading report from stdin")
			return report.Decode(a.stdin)
		}
		a.log.WithField("path", source).Debug("reading report")
		return report.LoadFile(source)
	}

	parser := testparser.NewRegistry().GetParser(input)
	if parser == nil {
		return nil, errors.InvalidArgumentf("--input", "unknown input format %q", input)
	}

	var in io.Reader = a.stdin
	if source != stdinPath {
		f, err := os.Open(source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFound("test output", source)
			}
			return nil, errors.Wrap(err, "failed to open test output")
		}
		defer f.Close()
		in = f
	}

	a.log.WithFields(logrus.Fields{"source": source, "parser": parser.Name()}).Debug("parsing test output")
	res, err := parser.Parse(in)
	if err != nil {
		return nil, err
	}
	if !res.Parsed() {
		a.out.Warning("no test results found in %s", source)
	}
	for _, ft := range res.Counts.FailedTests {
		if ft.Reason != "" {
			a.out.Warning("%s failed: %s", ft.Name, ft.Reason)
		} else {
			a.out.Warning("%s failed", ft.Name)
		}
	}
	return res.Report, nil
}

func (a *app) writeMarkdown(r *model.Report, opts report.PrinterOptions, path string) error {
	var w io.Writer = a.stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer f.Close()
		w = f
	}

	if _, err := report.NewMarkdownWriter(w, opts).Write(r); err != nil {
		return errors.Wrap(err, "failed to write markdown")
	}
	if path != "" {
		a.out.Info("Wrote %s", path)
	}
	return nil
}
