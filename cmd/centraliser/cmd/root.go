package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

const envPrefix = "CENTRALISER"

var longRootCmdDescription = `centraliser decides whether a transformation f belongs to the semigroup
generated by a set A of transformations, when f commutes with every
element of A. It reduces the question to the orbit quotient of A and
verifies every positive answer with an explicit factorisation.

Settings come from flags, CENTRALISER_* environment variables and an
optional YAML config file, in that order of precedence.
`

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger *logrus.Logger
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "centraliser",
		Short:         "Decide membership of centralising transformations",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (YAML)")
	pf.BoolP("debug", "d", false, "turn on debug logging")
	pf.Int("max-elements", 1_000_000, "bound on the elements of any enumerated semigroup (0 for none)")
	_ = a.v.BindPFlags(pf)

	rootCmd.AddCommand(
		newDecideCmd(a),
		newBarCmd(a),
		newEnumerateCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command line and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("centraliser-%s: %v", Version, err)
		os.Exit(1)
	}
}

// initConfig wires environment variables, the config file and logging.
func (a *app) initConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(cmd.Flags())

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if a.v.GetBool("debug") {
		a.logger.SetLevel(logrus.DebugLevel)
	} else {
		a.logger.SetLevel(logrus.InfoLevel)
	}
	a.logger.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")

	return nil
}
