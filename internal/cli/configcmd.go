package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/analogue/pkg/config"
	"github.com/matzehuels/analogue/pkg/errors"
)

// configCommand creates the config command, which shows the effective
// configuration or writes a default config file.
func (c *CLI) configCommand() *cobra.Command {
	var (
		initFile bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				return c.runConfigInit(force)
			}
			return c.runConfigShow()
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write a config file with default settings")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func (c *CLI) runConfigShow() error {
	path, err := c.resolveConfigPath()
	if err != nil {
		return err
	}
	printKeyValue(c.out, "File", path)
	if _, err := os.Stat(path); err != nil {
		printDetail(c.out, "not found, using defaults")
	}
	var buf strings.Builder
	if err := c.Config.Encode(&buf); err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		printDetail(c.out, "%s", line)
	}
	return nil
}

func (c *CLI) runConfigInit(force bool) error {
	path, err := c.resolveConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrCodeInvalidInput, "config file %s already exists (use --force to overwrite)", path)
	}
	if err := config.Default().Save(path); err != nil {
		return err
	}
	printSuccess(c.out, "Wrote default configuration")
	printFile(c.out, path)
	return nil
}

func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}
