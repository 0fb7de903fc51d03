package main

import (
	"io"
	"os"

	"github.com/msnoigrs/gowordseg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var segmentOpts struct {
	lang    string
	variant string
	merge   string
	format  string
	top     int
}

var segmentCmd = &cobra.Command{
	Use:   "segment [file ...]",
	Short: "count the dictionary words of the input",
	Long: `Segment every input line and print the words found, most frequent first.
With --merge the counts of an earlier csv export are added.`,
	RunE: runSegment,
}

func init() {
	f := segmentCmd.Flags()
	f.StringVarP(&segmentOpts.lang, "lang", "l", "chinese", "language of the input (chinese, laotian or a language tag)")
	f.StringVar(&segmentOpts.variant, "variant", "", "script of the chinese lexicon keys (traditional, simplified, zh-Hans, ...)")
	f.StringVarP(&segmentOpts.merge, "merge", "m", "", "add the counts of an earlier csv export")
	f.StringVar(&segmentOpts.format, "format", "csv", "output format (csv, text)")
	f.IntVarP(&segmentOpts.top, "top", "n", 0, "print only the n most frequent words")
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) (err error) {
	if segmentOpts.format != "csv" && segmentOpts.format != "text" {
		return errors.Errorf("unknown format %q", segmentOpts.format)
	}
	kind, err := gowordseg.ParseLangKind(segmentOpts.lang)
	if err != nil {
		return err
	}
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if segmentOpts.variant != "" {
		config.ChineseVariant, err = gowordseg.ParseKeyVariant(segmentOpts.variant)
		if err != nil {
			return err
		}
	}
	dict, err := loadDictionary(cmd.Context(), config, kind)
	if err != nil {
		return err
	}

	total := gowordseg.NewResult()
	if segmentOpts.merge != "" {
		previous, err := readExport(segmentOpts.merge)
		if err != nil {
			return err
		}
		total.Merge(previous)
	}
	lines, err := readLines(args, func(line string) {
		total.Merge(dict.Segment(line))
	})
	if err != nil {
		return err
	}

	ranked := total.Rank()
	if segmentOpts.top > 0 && segmentOpts.top < len(ranked) {
		ranked = ranked[:segmentOpts.top]
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
	if segmentOpts.format == "text" {
		err = printRanked(output, ranked)
	} else {
		err = gowordseg.WriteTabular(output, ranked)
	}
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	log.Info().
		Str("lang", dict.Lang().String()).
		Msg(p.Sprintf("%d lines, %d distinct words", lines, total.Len()))
	return nil
}

func readExport(filename string) (*gowordseg.Result, error) {
	f, err := os.OpenFile(filename, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := gowordseg.ReadTabular(f)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return gowordseg.ResultFromEntries(entries), nil
}

func printRanked(output io.Writer, ranked []gowordseg.Entry) error {
	p := message.NewPrinter(language.English)
	for _, e := range ranked {
		if _, err := p.Fprintf(output, "%8d  %s\n", e.Definition.Count, e.Definition.String()); err != nil {
			return &gowordseg.SerializationError{Err: err}
		}
	}
	return nil
}
