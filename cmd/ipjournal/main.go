package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ipjournal/internal/config"
	"ipjournal/internal/logs"
	"ipjournal/internal/monitor"
	"ipjournal/internal/pipeline"
)

var (
	sha1ver   string
	buildTime string
	repoName  = "ipjournal"
)

type app struct {
	out        io.Writer
	configFile string
	noColor    bool
	log        *logs.Manager
}

func main() {
	os.Exit(newApp(os.Stdout).execute(os.Args[1:]))
}

func newApp(out io.Writer) *app {
	return &app{out: out}
}

// execute runs the command line and returns the process exit status
func (a *app) execute(args []string) int {
	root := a.rootCmd()
	root.AddCommand(a.watchCmd())
	root.SetArgs(args)
	root.SetOut(a.out)

	err := root.Execute()
	if a.log == nil {
		a.log = logs.NewManager(a.out, !a.noColor)
	}
	defer a.log.Close()

	if err != nil {
		a.log.Error("%v", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ipjournal",
		Short:         "Count access journal entries per address",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logs.NewManager(a.out, !a.noColor)
			a.log.Info("%s: Build %s, Time %s", repoName, sha1ver, buildTime)
			a.log.Info("Starting application")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			_, err = pipeline.Run(cfg, a.log)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", config.DefaultFile, "INI file with default argument values")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	config.RegisterFlags(cmd.PersistentFlags())
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-run the count each time the journal changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolve(cmd)
			if err != nil {
				return err
			}

			m := monitor.New(cfg.FileLog, func() error {
				_, err := pipeline.Run(cfg, a.log)
				return err
			}, a.log)
			if err := m.Start(); err != nil {
				return err
			}
			defer m.Stop()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan

			a.log.Info("Shutting down...")
			return nil
		},
	}
}

func (a *app) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.New(a.configFile, cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	if cfg.LogFile != "" {
		a.log.AttachFile(cfg.LogFile)
	}
	a.log.Info("Parsed arguments successfully")
	return cfg, nil
}
