package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/oarkflow/textlab/nlp/translate"
)

func translateCmd(opts *options) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Detect the language of text and translate it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.cfg.Translate.Enabled {
				return errors.New("translation is disabled in the configuration")
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			var tr translate.Translator = translate.NewClient(opts.cfg.Translate.ClientConfig())
			if dsn := opts.cfg.Translate.CacheDSN; dsn != "" {
				cache, err := translate.OpenCache(dsn)
				if err != nil {
					return err
				}
				defer cache.Close()
				tr = translate.Cached(tr, cache)
			}
			result, err := translate.NewService(tr, nil).Translate(cmd.Context(), text, to)
			if err != nil {
				return err
			}
			return opts.write(cmd, result)
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "English", "target language name or code")
	return cmd
}

func languagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the translation targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.write(cmd, translate.Targets)
		},
	}
}
