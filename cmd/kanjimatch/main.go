// Command kanjimatch ranks a drawn character against the built-in corpus.
//
// The query is either a stroke summary (as written by kanji.Info.Summary)
// or a built-in glyph, optionally jittered, reordered or reversed:
//
//	kanjimatch -summary '00,7f-ff,7f:7f,00-7f,ff'
//	kanjimatch -glyph 木 -jitter 1.5 -seed 3 -algo SPANS
//	kanjimatch -glyph 本 -drop 1 -algo FUZZY_1OUT -workers 4 -v
//	kanjimatch -save > corpus.json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/kanjirec/glyphs"
	"github.com/katalvlaran/kanjirec/kanji"
	"github.com/katalvlaran/kanjirec/match"
)

func main() {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.WithError(err).Error("kanjimatch failed")
		os.Exit(1)
	}
}

type options struct {
	algo    string
	summary string
	glyph   string
	jitter  float64
	seed    int64
	reverse int
	drop    int
	workers int
	cutoff  float64
	verbose bool
	save    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("kanjimatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.algo, "algo", match.Fuzzy.Key, "algorithm key (STRICT, FUZZY, FUZZY_1OUT, FUZZY_2OUT, SPANS, SPANS_1OUT, SPANS_2OUT)")
	fs.StringVar(&o.summary, "summary", "", "query strokes as 'xx,yy-xx,yy:...'")
	fs.StringVar(&o.glyph, "glyph", "", "query a built-in character")
	fs.Float64Var(&o.jitter, "jitter", 0, "noise sigma for -glyph, in grid units")
	fs.Int64Var(&o.seed, "seed", 1, "random seed for -jitter")
	fs.IntVar(&o.reverse, "reverse", -1, "draw this stroke of -glyph backwards")
	fs.IntVar(&o.drop, "drop", 0, "omit the last n strokes of -glyph")
	fs.IntVar(&o.workers, "workers", 1, "goroutines scoring candidates")
	fs.Float64Var(&o.cutoff, "cutoff", match.DefaultCutoff, "keep matches scoring at least this share of the best")
	fs.BoolVar(&o.verbose, "v", false, "log every scored candidate")
	fs.BoolVar(&o.save, "save", false, "print the corpus as JSON and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch {
	case o.save:
	case (o.summary == "") == (o.glyph == ""):
		return o, fmt.Errorf("exactly one of -summary and -glyph is required")
	case o.glyph != "" && utf8.RuneCountInString(o.glyph) != 1:
		return o, fmt.Errorf("-glyph wants one character, got %q", o.glyph)
	case o.workers < 1:
		return o, fmt.Errorf("-workers must be at least 1")
	case !(o.cutoff > 0 && o.cutoff <= 1):
		return o, fmt.Errorf("-cutoff must be in (0,1]")
	case o.jitter < 0 || o.drop < 0:
		return o, fmt.Errorf("-jitter and -drop must not be negative")
	}

	return o, nil
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	o, err := parseFlags(args, logger.Out)
	if err != nil {
		return err
	}
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	list, err := glyphs.Corpus()
	if err != nil {
		return err
	}
	logger.WithField("kanji", list.Len()).Debug("corpus loaded")

	if o.save {
		data, err := list.Save()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))

		return err
	}

	algo, err := match.ByKey(o.algo)
	if err != nil {
		return err
	}
	drawn, err := query(o)
	if err != nil {
		return err
	}
	n, _ := drawn.StrokeCount()
	dirs, _ := drawn.DirectionsSummary()
	logger.WithFields(log.Fields{
		"label":      drawn.Label(),
		"strokes":    n,
		"directions": dirs,
		"algo":       algo.Key,
	}).Info("matching")

	ms, err := list.TopMatches(drawn, algo,
		match.WithWorkers(o.workers),
		match.WithCutoff(o.cutoff),
		match.WithOnScore(func(m kanji.Match) {
			logger.WithFields(log.Fields{"kanji": m.Info.Label(), "score": m.Score}).Debug("scored")
		}))
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		logger.Warn("no candidates")
	}
	for i, m := range ms {
		if _, err := fmt.Fprintf(stdout, "%2d  %s  U+%s  %6.2f\n", i+1, m.Info.Label(), m.Info.CodePoint(), m.Score); err != nil {
			return err
		}
	}

	return nil
}

// query builds the drawn record from -summary or -glyph.
func query(o options) (*kanji.Info, error) {
	if o.summary != "" {
		return kanji.FromSummary("?", o.summary)
	}

	r, _ := utf8.DecodeRuneInString(o.glyph)
	opts := []glyphs.Option{glyphs.WithSeed(o.seed), glyphs.WithJitter(o.jitter), glyphs.WithDropLast(o.drop)}
	if o.reverse >= 0 {
		opts = append(opts, glyphs.WithReversed(o.reverse))
	}

	return glyphs.Info(r, opts...)
}
