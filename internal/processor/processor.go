package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/projiaq/Catime/internal/cli"
	"github.com/projiaq/Catime/internal/gui"
	"github.com/projiaq/Catime/internal/history"
	"github.com/projiaq/Catime/internal/phonetic"
	"github.com/projiaq/Catime/internal/translation"
	"github.com/projiaq/Catime/internal/vocab"
	"github.com/projiaq/Catime/internal/words"
)

// suffixCapacity matches the display buffer of the clock window: room for
// the word, both transcriptions and a truncated translation.
const suffixCapacity = 128

// Processor handles the main word display logic
type Processor struct {
	flags *cli.Flags
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// DisplayConfig converts the flag values into the store configuration
func (p *Processor) DisplayConfig() *words.Config {
	return &words.Config{
		Enabled:           p.flags.Enabled,
		SwitchIntervalSec: p.flags.SwitchInterval,
		ShowPhonetic:      p.flags.ShowPhonetic,
		PhoneticMode:      words.ParseMode(p.flags.PhoneticMode),
		ShowTranslation:   p.flags.ShowTranslation,
		TranslationMaxLen: p.flags.MaxTranslationLen,
	}
}

func (p *Processor) provider() vocab.Provider {
	return vocab.SelectProvider(p.flags.VocabFile)
}

// PrintWords renders n successive word suffixes to stdout.
func (p *Processor) PrintWords(n int) error {
	cfg := p.DisplayConfig()
	store := words.New(cfg, p.provider(), words.Options{})
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to initialize word store: %w", err)
	}
	defer store.Shutdown()

	rec, err := p.openRecorder()
	if err != nil {
		return err
	}
	if rec != nil {
		defer rec.Close()
	}

	for i := 0; i < n; i++ {
		fmt.Println(store.FormatSuffix(suffixCapacity))
		if rec != nil {
			if e, ok := store.Current(); ok {
				if err := rec.Record(e.Name); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to record %q: %v\n", e.Name, err)
				}
			}
		}
		store.Next()
	}
	return nil
}

// Validate parses the vocabulary source and reports statistics.
func (p *Processor) Validate() error {
	buf, err := p.provider().Load()
	if err != nil {
		return err
	}
	entries, err := vocab.ParseTSV(buf)
	if err != nil {
		return err
	}

	missingUK, missingUS, missingTrans := 0, 0, 0
	for _, e := range entries {
		if e.PhoneticUK == "" {
			missingUK++
		}
		if e.PhoneticUS == "" {
			missingUS++
		}
		if e.Translation == "" {
			missingTrans++
		}
	}

	fmt.Printf("Vocabulary OK: %d entries\n", len(entries))
	fmt.Printf("  missing UK phonetic:  %d\n", missingUK)
	fmt.Printf("  missing US phonetic:  %d\n", missingUS)
	fmt.Printf("  missing translation:  %d\n", missingTrans)
	return nil
}

// transcriptionSource yields IPA pairs for enrichment.
type transcriptionSource interface {
	Fetch(ctx context.Context, word string) (phonetic.Transcription, error)
}

// Enrich fills missing phonetics and translations in the vocabulary file
// and writes it back.
func (p *Processor) Enrich(ctx context.Context) error {
	if p.flags.VocabFile == "" {
		return fmt.Errorf("--enrich requires --vocab; the embedded list cannot be rewritten")
	}

	buf, err := vocab.FileProvider{Path: p.flags.VocabFile}.Load()
	if err != nil {
		return err
	}
	entries, err := vocab.ParseTSV(buf)
	if err != nil {
		return err
	}

	translator, err := p.newTranslator()
	if err != nil {
		return err
	}
	fetcher := phonetic.NewFetcher(cli.GetOpenAIKey(), p.flags.OpenAIModel)

	updated, errCount := enrichEntries(ctx, entries, fetcher, translator, translation.NewCache())

	fmt.Printf("\n=== Enrichment Summary ===\n")
	fmt.Printf("Total entries: %d\n", len(entries))
	fmt.Printf("Updated: %d\n", updated)
	if errCount > 0 {
		fmt.Printf("Errors: %d\n", errCount)
	}
	fmt.Printf("==========================\n")

	if updated == 0 {
		fmt.Println("Nothing to write.")
		return nil
	}
	if err := vocab.WriteTSV(p.flags.VocabFile, entries); err != nil {
		return err
	}
	fmt.Printf("Vocabulary written to: %s\n", p.flags.VocabFile)
	return nil
}

// enrichEntries mutates entries in place, filling the fields the sources can
// supply. Per-entry failures are reported and skipped, matching the
// tolerant row handling of the parser.
func enrichEntries(ctx context.Context, entries []vocab.Entry, fetcher transcriptionSource,
	translator translation.Translator, cache *translation.Cache) (updated, errCount int) {

	for i := range entries {
		e := &entries[i]
		changed := false

		if e.PhoneticUK == "" || e.PhoneticUS == "" {
			tr, err := fetcher.Fetch(ctx, e.Name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error fetching phonetics for '%s': %v\n", e.Name, err)
				errCount++
			} else {
				if e.PhoneticUK == "" && tr.UK != "" {
					e.PhoneticUK = tr.UK
					changed = true
				}
				if e.PhoneticUS == "" && tr.US != "" {
					e.PhoneticUS = tr.US
					changed = true
				}
			}
		}

		if e.Translation == "" {
			gloss, ok := cache.Get(e.Name)
			if !ok {
				var err error
				gloss, err = translator.Translate(ctx, e.Name)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error translating '%s': %v\n", e.Name, err)
					errCount++
					gloss = ""
				} else {
					cache.Add(e.Name, gloss)
				}
			}
			if gloss != "" {
				e.Translation = gloss
				changed = true
			}
		}

		if changed {
			fmt.Printf("Enriched %d/%d: %s\n", i+1, len(entries), e.Name)
			updated++
		}
	}
	return updated, errCount
}

func (p *Processor) newTranslator() (translation.Translator, error) {
	switch p.flags.LLMProvider {
	case "openai":
		return translation.NewOpenAITranslator(cli.GetOpenAIKey(), p.flags.OpenAIModel), nil
	case "gemini":
		return translation.NewGeminiTranslator(cli.GetGeminiKey(), p.flags.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (use openai or gemini)", p.flags.LLMProvider)
	}
}

// ShowHistory prints the recent rows and the all-time top words from the
// history database.
func (p *Processor) ShowHistory() error {
	if p.flags.HistoryDB == "" {
		return fmt.Errorf("--history requires --history-db")
	}
	rec, err := history.Open(p.flags.HistoryDB)
	if err != nil {
		return err
	}
	defer rec.Close()

	recent, err := rec.Recent(p.flags.HistoryLimit)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Println("No words recorded yet.")
		return nil
	}

	fmt.Println("Recently displayed words:")
	for _, s := range recent {
		fmt.Printf("  %s  %s\n", s.At.Format("2006-01-02 15:04:05"), s.Word)
	}

	top, err := rec.TopWords(10)
	if err != nil {
		return err
	}
	fmt.Println("\nMost displayed:")
	for _, wc := range top {
		fmt.Printf("  %4d  %s\n", wc.Count, wc.Word)
	}
	return nil
}

func (p *Processor) openRecorder() (*history.Recorder, error) {
	if p.flags.HistoryDB == "" {
		return nil, nil
	}
	rec, err := history.Open(p.flags.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return rec, nil
}

// RunGUIMode launches the clock window.
func (p *Processor) RunGUIMode() error {
	app := gui.New(&gui.Config{
		Display:   p.DisplayConfig(),
		Provider:  p.provider(),
		HistoryDB: p.flags.HistoryDB,
	})
	return app.Run()
}
