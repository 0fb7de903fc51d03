package main

import (
	"github.com/msnoigrs/gowordseg"
	"github.com/msnoigrs/gowordseg/dictionary"
	"github.com/spf13/cobra"
)

var lexiconOpts struct {
	lang    string
	summary bool
}

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "print the configured lexicon",
	Args:  cobra.NoArgs,
	RunE:  runLexicon,
}

func init() {
	f := lexiconCmd.Flags()
	f.StringVarP(&lexiconOpts.lang, "lang", "l", "chinese", "language of the lexicon")
	f.BoolVarP(&lexiconOpts.summary, "summary", "s", false, "print only the number of entries and the longest word")
	rootCmd.AddCommand(lexiconCmd)
}

func runLexicon(cmd *cobra.Command, args []string) (err error) {
	kind, err := gowordseg.ParseLangKind(lexiconOpts.lang)
	if err != nil {
		return err
	}
	config, err := loadConfig()
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cmd.Context(), config, kind)
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
	if lexiconOpts.summary {
		source := config.ChineseDict
		if kind == gowordseg.Laotian {
			source = config.LaotianDict
		}
		return dictionary.PrintSummary(source, dict.Lexicon(), output)
	}
	return dictionary.PrintLexicon(dict.Lexicon(), output)
}
