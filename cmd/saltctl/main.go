// Command saltctl forges, identifies and checks crypt(3) salts and password
// hashes.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-crypt-utils/hashing"
)

type app struct {
	log      *logrus.Logger
	cfg      *SaltctlConfigFile
	cfgPath  string
	logLevel string
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	a := &app{log: log, cfg: GetDefaultConfig()}

	root := &cobra.Command{
		Use:               "saltctl",
		Short:             "Forge, identify and check crypt(3) salts and password hashes",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: panic, fatal, error, warning, info, debug or trace")

	root.AddCommand(
		a.forgeCmd(),
		a.identifyCmd(),
		a.inspectCmd(),
		a.validateCmd(),
		a.roundsCmd(),
		a.digestCmd(),
		a.algorithmsCmd(),
		a.secureCmd(),
		a.cryptCmd(),
		a.hashCmd(),
		a.checkCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads the configuration file and applies the log level.  The
// --log-level flag wins over the file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgPath != "" {
		cfg, err := LoadConfig(a.cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", a.cfgPath, err)
		}
		a.cfg = cfg
	}

	level := a.cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	a.log.SetLevel(lvl)

	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  a.cfgPath,
		"level":   lvl,
	}).Debug("saltctl configured")
	return nil
}

func (a *app) manager() (*hashing.Manager, error) {
	m, err := hashing.NewManagerFromOptions(a.cfg.Hashing.managerOptions())
	if err != nil {
		return nil, fmt.Errorf("invalid [hashing] configuration: %w", err)
	}
	return m, nil
}

func main() {
	if err := newRootCmd(logrus.StandardLogger()).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
