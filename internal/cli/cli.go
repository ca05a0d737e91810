// Package cli implements the secp256k1-keygen command line.
//
// Every flag can also be set through the environment using the
// SECP256K1_KEYGEN_ prefix, with dashes replaced by underscores, for example
// SECP256K1_KEYGEN_LOG_LEVEL=debug.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rafaelescrich/secp256k1-keygen/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by the commands.
const EnvPrefix = "SECP256K1_KEYGEN"

type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// NewCommand returns the root command. Each call has its own configuration,
// so commands can be built and executed repeatedly in tests.
func NewCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	root := &cobra.Command{
		Use:               "secp256k1-keygen",
		Short:             "Generate and inspect secp256k1 keys",
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogging,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "minimum log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console, json or logfmt")
	a.bind(flags, "log-level", "log-format")

	root.AddCommand(a.generateCmd())
	root.AddCommand(a.paramsCmd())
	root.AddCommand(a.checkCmd())
	return root
}

func (a *app) bind(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func (a *app) setupLogging(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(logging.Config{
		Level:  a.v.GetString("log-level"),
		Format: a.v.GetString("log-format"),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.logger = logger.Named(cmd.Name())
	return nil
}
