package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"

	"github.com/josephlewis42/pipesh/core"
	"github.com/josephlewis42/pipesh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
	debug       bool
)

func loadConfig(logger *log.Logger) (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		logger.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pipesh",
	Short: "A minimal pipeline shell",
	Long: `pipesh reads lines, splits them on '|' and runs each segment as a
program with its output piped into the next. The builtins cd and exit run
inside the shell.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		errLogger := log.New(cmd.ErrOrStderr(), "", 0)
		debugLogger := log.New(io.Discard, "", 0)
		if debug {
			debugLogger = log.New(cmd.ErrOrStderr(), "[pipesh] ", log.Ltime)
		}

		configuration, err := loadConfig(errLogger)
		if err != nil {
			return err
		}

		identity, err := config.SystemIdentitySource().Resolve()
		if err != nil {
			return err
		}

		sh, err := core.NewShell(configuration, identity, debugLogger)
		if err != nil {
			return err
		}
		sh.Executor.Stdout = cmd.OutOrStdout()
		sh.Executor.Stderr = cmd.ErrOrStderr()

		if cmd.Flags().Changed("command") {
			sh.RunCommand(commandLine)
			return nil
		}

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "directory holding config.yaml, built-in defaults if empty")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log spawned processes to stderr")
}
