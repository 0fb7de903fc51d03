package main

import (
	"github.com/msnoigrs/gowordseg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var charsLang string

var charsCmd = &cobra.Command{
	Use:   "chars [file ...]",
	Short: "count the characters of the input",
	RunE:  runChars,
}

func init() {
	charsCmd.Flags().StringVarP(&charsLang, "lang", "l", "chinese", "language whose punctuation is removed")
	rootCmd.AddCommand(charsCmd)
}

func runChars(cmd *cobra.Command, args []string) (err error) {
	kind, err := gowordseg.ParseLangKind(charsLang)
	if err != nil {
		return err
	}
	config, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := gowordseg.LoadPunctuationTable(config.PunctuationFile)
	if err != nil {
		return err
	}

	counts := gowordseg.NewCharacterCounts()
	lines, err := readLines(args, func(line string) {
		counts.Merge(gowordseg.CountCharacters(line, table.For(kind)))
	})
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); err == nil {
			err = cerr
		}
	}()
	if err := counts.WriteTabular(output); err != nil {
		return err
	}
	log.Debug().
		Int("lines", lines).
		Int("characters", counts.Len()).
		Msg("characters counted")
	return nil
}
