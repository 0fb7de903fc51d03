package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/msnoigrs/gowordseg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	settingfile string
	outputfile  string
	verbose     bool
	ignoreerr   bool
)

var rootCmd = &cobra.Command{
	Use:   "gowordsegcli",
	Short: "count dictionary words in Chinese and Lao text",
	Long: `gowordsegcli finds the words of a CC-CEDICT or CSV lexicon in Chinese or
Lao text and prints them with their definitions, most frequent first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&settingfile, "settings", "r", "", "read settings from file")
	pf.StringVarP(&outputfile, "output", "o", "", "output to file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	pf.BoolVarP(&ignoreerr, "ignore-error", "f", false, "skip unreadable input lines")
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("gowordsegcli failed")
		os.Exit(1)
	}
}

// loadConfig reads the settings file, or the bundled defaults resolved
// against the directory of the executable.
func loadConfig() (*gowordseg.BaseConfig, error) {
	ex, err := os.Executable()
	if err != nil {
		return nil, err
	}
	settings, err := gowordseg.ReadSettings(filepath.Dir(ex), settingfile)
	if err != nil {
		return nil, err
	}
	return settings.GetBaseConfig(), nil
}

func loadDictionary(ctx context.Context, config *gowordseg.BaseConfig, kind gowordseg.LangKind) (*gowordseg.Dictionary, error) {
	only := *config
	switch kind {
	case gowordseg.Chinese:
		only.LaotianDict = ""
	case gowordseg.Laotian:
		only.ChineseDict = ""
	}
	ds, err := gowordseg.LoadDictionaries(ctx, &only)
	if err != nil {
		return nil, err
	}
	d, ok := ds.Get(kind)
	if !ok {
		return nil, errors.Errorf("no %s dictionary configured", kind)
	}
	return d, nil
}

// openOutput returns stdout, or a buffered writer on outputfile. The close
// function flushes and closes it.
func openOutput() (io.Writer, func() error, error) {
	if outputfile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	filename := outputfile
	if !filepath.IsAbs(filename) {
		abs, err := filepath.Abs(filename)
		if err != nil {
			return nil, nil, err
		}
		filename = abs
	}
	outputfd, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, err
	}
	bufiooutput := bufio.NewWriter(outputfd)
	return bufiooutput, func() error {
		if err := bufiooutput.Flush(); err != nil {
			outputfd.Close()
			return err
		}
		return outputfd.Close()
	}, nil
}
