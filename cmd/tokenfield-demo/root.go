package main

import (
	_ "embed"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tokenfield"
	"github.com/iw2rmb/tokenfield/internal/formfile"
	"github.com/iw2rmb/tokenfield/internal/logs"
)

//go:embed sample.yaml
var sampleForm []byte

type options struct {
	formPath string
	logPath  string
	logLevel string
	width    int
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "tokenfield-demo",
		Short:   "Edit list fields as comma-separated text",
		Version: tokenfield.Version(),
		Long: `Runs a terminal form whose fields hold lists of tokens.

Type comma-separated values; enter or tab commits a field. ctrl+r reloads
the form values from the definition, ctrl+s prints the committed values as
JSON and exits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.formPath, "form", "f", "", "YAML form definition (default: built-in sample)")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "append logs to this file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 48, "input width in cells")

	return cmd
}

func loadForm(path string) (*formfile.File, error) {
	if path == "" {
		return formfile.Parse(sampleForm)
	}
	return formfile.Load(path)
}

func run(opts *options, out io.Writer) error {
	def, err := loadForm(opts.formPath)
	if err != nil {
		return err
	}

	level, err := logs.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logOpts := logs.Options{Level: level}
	if opts.logPath != "" {
		f, err := logs.OpenFile(opts.logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		logOpts.Text = f
	}
	logger := logs.New(logOpts)

	m, err := newApp(def, opts.width, logger)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if a, ok := final.(app); ok && a.submitted {
		_, err = fmt.Fprintln(out, a.store.ValuesDoc().String())
		return err
	}
	return nil
}
