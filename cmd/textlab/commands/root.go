package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oarkflow/textlab/nlp/export"
	"github.com/oarkflow/textlab/server/pkg/config"
)

type options struct {
	configPath string
	format     string
	cfg        config.Config
}

func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the textlab command tree.
func NewRoot() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "textlab",
		Short:        "Text analysis, translation and sentiment scoring",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := export.ParseFormat(opts.format); err != nil {
				return err
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (.yaml or .bcl)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "json", "output format: json, yaml or msgpack")

	root.AddCommand(
		serveCmd(opts),
		analyzeCmd(opts),
		sentimentCmd(opts),
		translateCmd(opts),
		wordCloudCmd(opts),
		languagesCmd(opts),
	)
	return root
}

// readText joins args, or reads stdin when there are none or the only
// argument is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	bt, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(bt), "\r\n"), nil
}

func (o *options) write(cmd *cobra.Command, v any) error {
	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}
	return export.Encode(cmd.OutOrStdout(), format, v)
}
