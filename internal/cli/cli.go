// Package cli provides the command-line interface for buildreport.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
	"github.com/AndreyAkinshin/buildreport/internal/output"
)

// Version is set at build time.
var Version = "dev"

// debugEnv enables debug logging when set to any non-empty value.
const debugEnv = "BUILDREPORT_DEBUG"

// app carries the process environment so tests can substitute it.
type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	workDir string
	getenv  func(string) string

	out *output.Writer
	log *logrus.Logger

	// Persistent flags.
	configPath string
	debug      bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, workDir string) *app {
	a := &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		workDir: workDir,
		getenv:  os.Getenv,
		out:     output.NewWithWriters(stdout, stderr, false),
		log:     logrus.New(),
	}
	// Auto detection only enables color when stdout is a terminal.
	a.out.SetColorMode(output.ColorAuto)
	a.log.SetOutput(stderr)
	a.log.SetLevel(logrus.WarnLevel)
	return a
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return newApp(os.Stdin, os.Stdout, os.Stderr, wd).run(args)
}

func (a *app) run(args []string) int {
	root := a.newRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "buildreport",
		Short:         "Print build task reports",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			a.setupLogging()
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate("buildreport {{.Version}}\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: discovered .buildreport/config.json)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (or set "+debugEnv+")")

	root.AddGroup(
		&cobra.Group{ID: "report", Title: groupTitle("report")},
		&cobra.Group{ID: "utility", Title: groupTitle("utility")},
	)
	root.AddCommand(a.newPrintCommand(), a.newConfigCommand(), a.newVersionCommand())

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.InvalidArgumentf("flags", "%v", err)
	})
	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		a.printHelp(c)
	})
	return root
}

// setupLogging configures the diagnostic logger. User-facing output never goes through it.
func (a *app) setupLogging() {
	if a.debug || a.getenv(debugEnv) != "" {
		a.log.SetLevel(logrus.DebugLevel)
	}
	a.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !a.out.ColorEnabled(),
	})
}

// exactArgs wraps cobra.ExactArgs so argument count mistakes map to the input exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

func maximumArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MaximumNArgs(n))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.InvalidArgumentf(cmd.Name(), "%v", err)
		}
		return nil
	}
}

func groupTitle(id string) string {
	return cases.Title(language.English).String(id) + " Commands:"
}

func (a *app) printHelp(c *cobra.Command) {
	w := a.out

	if !c.HasParent() {
		w.HelpTitle("buildreport - print build task reports")
		w.HelpSection("Usage:")
		w.Println("  buildreport <command> [flags]")
		for _, g := range c.Groups() {
			w.HelpSection(g.Title)
			for _, sub := range c.Commands() {
				if sub.GroupID == g.ID && sub.IsAvailableCommand() {
					w.HelpCommand(sub.Name(), sub.Short, 10)
				}
			}
		}
		w.HelpSection("Global Flags:")
		w.Print("%s", c.PersistentFlags().FlagUsages())
		w.HelpSection("Examples:")
		w.HelpExample("buildreport print report.yaml", "Print a report to the console")
		w.HelpExample("buildreport print -v --locale zh-CN report.json", "Include delegated tasks, Chinese titles")
		w.HelpExample("build-tool --report - | buildreport print --format markdown -", "Render a report from stdin as Markdown")
		w.Println("")
		return
	}

	w.HelpTitle(c.Short)
	w.HelpSection("Usage:")
	w.Println("  %s", c.UseLine())
	if c.HasAvailableSubCommands() {
		w.HelpSection("Commands:")
		for _, sub := range c.Commands() {
			if sub.IsAvailableCommand() {
				w.HelpCommand(sub.Name(), sub.Short, 10)
			}
		}
	}
	if c.HasAvailableLocalFlags() {
		w.HelpSection("Flags:")
		w.Print("%s", c.LocalFlags().FlagUsages())
	}
	if c.HasAvailableInheritedFlags() {
		w.HelpSection("Global Flags:")
		w.Print("%s", c.InheritedFlags().FlagUsages())
	}
	if c.Example != "" {
		w.HelpSection("Examples:")
		w.Println("%s", strings.TrimRight(c.Example, "\n"))
	}
	w.Println("")
}
