package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oarkflow/textlab/nlp/wordcloud"
)

func wordCloudCmd(opts *options) *cobra.Command {
	var (
		out           string
		width, height int
		maxWords      int
	)
	cmd := &cobra.Command{
		Use:   "wordcloud [text]",
		Short: "Render the word cloud of text as a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			o := opts.cfg.Analysis.CloudOptions()
			if width > 0 {
				o.Width = width
			}
			if height > 0 {
				o.Height = height
			}
			if maxWords > 0 {
				o.MaxWords = maxWords
			}
			png, err := wordcloud.Generate(text, nil, o)
			if err != nil {
				return err
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(png)
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("write word cloud: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%dx%d)\n", out, o.Width, o.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "wordcloud.png", "output file, - for stdout")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels")
	cmd.Flags().IntVar(&maxWords, "max-words", 0, "maximum number of words drawn")
	return cmd
}
