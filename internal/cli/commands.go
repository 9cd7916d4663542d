package cli

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/buildreport/internal/config"
	"github.com/AndreyAkinshin/buildreport/internal/errors"
)

func (a *app) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		GroupID: "utility",
		Use:     "config",
		Short:   "Inspect the configuration",
	}

	validate := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a configuration file",
		Long: `Validate a configuration file.
Without a path, the file that print would use is validated.`,
		Args: maximumArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			return a.runConfigValidate(path)
		},
	}
	cmd.AddCommand(validate)
	return cmd
}

func (a *app) runConfigValidate(path string) error {
	if path == "" {
		var ok bool
		if path, ok = config.Discover(a.workDir); !ok {
			return errors.NotFound("config file", filepath.Join(config.ConfigDirName, config.ConfigFileName))
		}
	}

	_, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		a.out.Warning("%s", w)
	}
	if err != nil {
		return err
	}
	a.out.Success("%s is valid", path)
	return nil
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		GroupID: "utility",
		Use:     "version",
		Short:   "Show version information",
		Args:    exactArgs(0),
		Run: func(_ *cobra.Command, _ []string) {
			a.out.Println("buildreport %s (%s, %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
