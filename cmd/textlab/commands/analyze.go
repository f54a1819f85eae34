package commands

import (
	"github.com/spf13/cobra"

	"github.com/oarkflow/textlab/nlp/pipeline"
	"github.com/oarkflow/textlab/nlp/translate"
)

func analyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text]",
		Short: "Statistics, stop words, lemmas, key phrases and summary of English text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			analyzer, err := pipeline.New(opts.cfg.Analysis)
			if err != nil {
				return err
			}
			report, err := analyzer.Analyze(cmd.Context(), text)
			if err != nil {
				return err
			}
			return opts.write(cmd, report)
		},
	}
}

func sentimentCmd(opts *options) *cobra.Command {
	var translateFirst bool
	cmd := &cobra.Command{
		Use:   "sentiment [text]",
		Short: "Polarity and subjectivity of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			var popts []pipeline.Option
			if translateFirst && opts.cfg.Translate.Enabled {
				popts = append(popts, pipeline.WithTranslator(translate.NewClient(opts.cfg.Translate.ClientConfig())))
			}
			analyzer, err := pipeline.New(opts.cfg.Analysis, popts...)
			if err != nil {
				return err
			}
			result, err := analyzer.Sentiment(cmd.Context(), text)
			if err != nil {
				return err
			}
			return opts.write(cmd, result)
		},
	}
	cmd.Flags().BoolVar(&translateFirst, "translate", false, "translate non-English text to English before scoring")
	return cmd
}
