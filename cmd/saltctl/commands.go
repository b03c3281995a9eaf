package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-crypt-utils/hashing"
	"github.com/hasbyte1/go-crypt-utils/salt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Salts
// ──────────────────────────────────────────────────────────────────────────────

func (a *app) forgeCmd() *cobra.Command {
	var (
		count, length, cost, rounds int
		shuffle                     bool
		alphabet, token             string
	)
	cmd := &cobra.Command{
		Use:   "forge <scheme>",
		Short: "Generate a salt",
		Long:  "Generate a salt for one of: generic, std_des, ext_des, md5, blowfish, sha256, sha512.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := salt.ParseScheme(args[0])
			if err != nil {
				return err
			}

			opts := a.cfg.Forge.options(scheme)
			flags := cmd.Flags()
			if flags.Changed("length") {
				opts.Length = length
			}
			if flags.Changed("alphabet") {
				opts.Alphabet = alphabet
			}
			if flags.Changed("cost") {
				opts.Cost = cost
			}
			if flags.Changed("rounds") {
				opts.Rounds = rounds
			}
			if flags.Changed("rounds-token") {
				opts.RoundsToken = token
				if !flags.Changed("rounds") {
					opts.Rounds = 0
				}
			}
			opts.Shuffle = shuffle

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				s, err := salt.Forge(scheme, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			a.log.WithFields(logrus.Fields{"scheme": scheme, "count": count}).Debug("forged salts")
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of salts to generate")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "generic salt length")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle the generic alphabet before sampling")
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "generic salt alphabet")
	cmd.Flags().IntVar(&cost, "cost", 0, "blowfish log2 cost, 4 to 31")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "ext_des or sha rounds")
	cmd.Flags().StringVar(&token, "rounds-token", "", "pre-encoded 4-character ext_des rounds")
	return cmd
}

func (a *app) identifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <salt>",
		Short: "Print the scheme a salt belongs to, or unknown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := salt.Identify(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), scheme)
			return nil
		},
	}
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <salt>",
		Short: "Print the scheme, cost and body of a salt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := salt.Inspect(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scheme: %s\n", info.Scheme)
			fmt.Fprintf(out, "cost:   %d\n", info.Cost)
			fmt.Fprintf(out, "body:   %s\n", info.Body)
			return nil
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	var schemeTag string
	cmd := &cobra.Command{
		Use:   "validate <salt>",
		Short: "Report whether a salt is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ok  bool
				err error
			)
			if schemeTag == "" {
				ok, err = salt.Validate(args[0])
			} else {
				var scheme salt.Scheme
				if scheme, err = salt.ParseScheme(schemeTag); err != nil {
					return err
				}
				ok, err = salt.ValidateScheme(args[0], scheme)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemeTag, "scheme", "s", "", "check against this scheme instead of identifying")
	return cmd
}

func (a *app) roundsCmd() *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "rounds <n>",
		Short: "Encode an extended DES rounds count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if decode {
				n, err := salt.DecodeRounds(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rounds %q is not an integer", args[0])
			}
			token, err := salt.EncodeRounds(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode a 4-character token instead")
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// Digests
// ──────────────────────────────────────────────────────────────────────────────

func (a *app) algorithm(name string) (hashing.Algorithm, error) {
	if name == "" {
		name = a.cfg.Digest.Algorithm
	}
	return hashing.ParseAlgorithm(name)
}

func (a *app) digestCmd() *cobra.Command {
	var algName string
	cmd := &cobra.Command{
		Use:   "digest [data]",
		Short: "Print the hex digest of data, or of standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.algorithm(algName)
			if err != nil {
				return err
			}
			var data []byte
			if len(args) == 1 {
				data = []byte(args[0])
			} else if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
				return err
			}
			sum, err := hashing.Digest(alg, data)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"algorithm": alg, "bytes": len(data)}).Debug("computed digest")
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "", "digest algorithm (default from config)")
	return cmd
}

func (a *app) algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the digest algorithms and their sizes in bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, alg := range hashing.Available() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d\n", alg, alg.Size())
			}
			return nil
		},
	}
}

func (a *app) secureCmd() *cobra.Command {
	var algName string
	cmd := &cobra.Command{
		Use:   "secure <password> [salt]",
		Short: "Print salt$hexdigest for a password",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.algorithm(algName)
			if err != nil {
				return err
			}
			var saltText string
			if len(args) == 2 {
				saltText = args[1]
			}
			v, err := hashing.Secure(args[0], saltText, alg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "", "digest algorithm (default from config)")
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// Password hashes
// ──────────────────────────────────────────────────────────────────────────────

func (a *app) cryptCmd() *cobra.Command {
	var schemeTag string
	cmd := &cobra.Command{
		Use:   "crypt <password> [setting]",
		Short: "Compute a crypt(3) hash",
		Long: "Compute a crypt(3) hash.  Without a setting a fresh salt is forged for\n" +
			"--scheme using the [forge] configuration.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var setting string
			if len(args) == 2 {
				setting = args[1]
			} else {
				scheme, err := salt.ParseScheme(schemeTag)
				if err != nil {
					return err
				}
				if setting, err = salt.Forge(scheme, a.cfg.Forge.options(scheme)); err != nil {
					return err
				}
			}
			hash, err := hashing.Crypt(args[0], setting)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemeTag, "scheme", "s", "sha512", "scheme of the forged salt")
	return cmd
}

func (a *app) hashCmd() *cobra.Command {
	var driver string
	cmd := &cobra.Command{
		Use:   "hash <password>",
		Short: "Hash a password with the default driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			if driver != "" {
				if err := m.SetDefaultDriver(hashing.DriverName(driver)); err != nil {
					return err
				}
			}
			hash, err := m.Make(args[0])
			if err != nil {
				return err
			}
			a.log.WithField("driver", m.DefaultDriver()).Debug("hashed password")
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().StringVarP(&driver, "driver", "d", "", "driver to use instead of the configured default")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <password> <hash>",
		Short: "Verify a password against a hash of any supported driver",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			password, hash := args[0], args[1]
			ok, err := m.CheckWithDetect(password, hash)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return nil
			}

			needs, err := m.NeedsRehash(hash)
			if err != nil {
				return err
			}
			if needs {
				driver, _ := hashing.DetectDriver(hash)
				a.log.WithFields(logrus.Fields{
					"driver":  driver,
					"default": m.DefaultDriver(),
				}).Info("stored hash should be rehashed")
			}
			return nil
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuration
// ──────────────────────────────────────────────────────────────────────────────

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return DumpConfig(a.cfg, cmd.OutOrStdout())
		},
	})
	return cmd
}
