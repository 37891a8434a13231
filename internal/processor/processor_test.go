package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/projiaq/Catime/internal/cli"
	"github.com/projiaq/Catime/internal/history"
	"github.com/projiaq/Catime/internal/phonetic"
	"github.com/projiaq/Catime/internal/testutil"
	"github.com/projiaq/Catime/internal/translation"
	"github.com/projiaq/Catime/internal/vocab"
	"github.com/projiaq/Catime/internal/words"
)

func TestDisplayConfig(t *testing.T) {
	flags := cli.NewFlags()
	flags.Enabled = true
	flags.SwitchInterval = 45
	flags.ShowPhonetic = false
	flags.PhoneticMode = "both"
	flags.ShowTranslation = true
	flags.MaxTranslationLen = 7

	cfg := NewProcessor(flags).DisplayConfig()

	if !cfg.Enabled {
		t.Error("Enabled not carried over")
	}
	if cfg.SwitchIntervalSec != 45 {
		t.Errorf("SwitchIntervalSec = %d, want 45", cfg.SwitchIntervalSec)
	}
	if cfg.ShowPhonetic {
		t.Error("ShowPhonetic not carried over")
	}
	if cfg.PhoneticMode != words.PhoneticBoth {
		t.Errorf("PhoneticMode = %v, want both", cfg.PhoneticMode)
	}
	if !cfg.ShowTranslation {
		t.Error("ShowTranslation not carried over")
	}
	if cfg.TranslationMaxLen != 7 {
		t.Errorf("TranslationMaxLen = %d, want 7", cfg.TranslationMaxLen)
	}
}

func TestPrintWords_RecordsHistory(t *testing.T) {
	flags := cli.NewFlags()
	flags.VocabFile = testutil.CreateVocabFile(t, testutil.SampleRows...)
	flags.HistoryDB = filepath.Join(t.TempDir(), "history.db")

	proc := NewProcessor(flags)
	if err := proc.PrintWords(3); err != nil {
		t.Fatalf("PrintWords failed: %v", err)
	}

	rec, err := history.Open(flags.HistoryDB)
	if err != nil {
		t.Fatalf("Failed to open history: %v", err)
	}
	defer rec.Close()

	recent, err := rec.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 recorded words, got %d", len(recent))
	}
}

func TestPrintWords_BadVocab(t *testing.T) {
	flags := cli.NewFlags()
	flags.VocabFile = filepath.Join(t.TempDir(), "missing.tsv")

	proc := NewProcessor(flags)
	if err := proc.PrintWords(1); !errors.Is(err, vocab.ErrResourceUnavailable) {
		t.Errorf("Expected ErrResourceUnavailable, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	flags := cli.NewFlags()
	flags.VocabFile = testutil.CreateVocabFile(t, testutil.SampleRows...)

	if err := NewProcessor(flags).Validate(); err != nil {
		t.Errorf("Validate failed on a good file: %v", err)
	}
}

func TestValidate_EmbeddedList(t *testing.T) {
	// No vocab file selects the embedded CET-4 list.
	flags := cli.NewFlags()

	if err := NewProcessor(flags).Validate(); err != nil {
		t.Errorf("Validate failed on the embedded list: %v", err)
	}
}

func TestEnrich_RequiresVocabFile(t *testing.T) {
	flags := cli.NewFlags()

	err := NewProcessor(flags).Enrich(context.Background())
	if err == nil {
		t.Error("Expected error when --vocab is not set")
	}
}

func TestNewTranslator_UnknownProvider(t *testing.T) {
	flags := cli.NewFlags()
	flags.LLMProvider = "bogus"

	if _, err := NewProcessor(flags).newTranslator(); err == nil {
		t.Error("Expected error for unknown LLM provider")
	}
}

func TestShowHistory_RequiresDatabase(t *testing.T) {
	flags := cli.NewFlags()

	if err := NewProcessor(flags).ShowHistory(); err == nil {
		t.Error("Expected error when --history-db is not set")
	}
}

// stubFetcher returns a fixed transcription.
type stubFetcher struct {
	tr    phonetic.Transcription
	err   error
	calls int
}

func (f *stubFetcher) Fetch(ctx context.Context, word string) (phonetic.Transcription, error) {
	f.calls++
	return f.tr, f.err
}

// stubTranslator returns a fixed gloss.
type stubTranslator struct {
	gloss string
	err   error
	calls int
}

func (s *stubTranslator) Translate(ctx context.Context, word string) (string, error) {
	s.calls++
	return s.gloss, s.err
}

func TestEnrichEntries(t *testing.T) {
	entries := []vocab.Entry{
		{Name: "abandon"},                                             // needs everything
		{Name: "cat", PhoneticUK: "kæt", PhoneticUS: "kæt"},           // needs translation
		{Name: "dog", PhoneticUK: "dɒɡ", PhoneticUS: "dɔːɡ", Translation: "狗"}, // complete
	}
	fetcher := &stubFetcher{tr: phonetic.Transcription{UK: "uk-ipa", US: "us-ipa"}}
	translator := &stubTranslator{gloss: "释义"}

	updated, errCount := enrichEntries(context.Background(), entries, fetcher, translator, translation.NewCache())

	if errCount != 0 {
		t.Errorf("errCount = %d, want 0", errCount)
	}
	if updated != 2 {
		t.Errorf("updated = %d, want 2", updated)
	}

	if entries[0].PhoneticUK != "uk-ipa" || entries[0].PhoneticUS != "us-ipa" || entries[0].Translation != "释义" {
		t.Errorf("First entry not fully enriched: %+v", entries[0])
	}
	if entries[1].Translation != "释义" {
		t.Errorf("Second entry translation not filled: %+v", entries[1])
	}
	if entries[2] != (vocab.Entry{Name: "dog", PhoneticUK: "dɒɡ", PhoneticUS: "dɔːɡ", Translation: "狗"}) {
		t.Errorf("Complete entry was modified: %+v", entries[2])
	}

	// Complete entries trigger no API traffic.
	if fetcher.calls != 1 {
		t.Errorf("Fetcher called %d times, want 1", fetcher.calls)
	}
	if translator.calls != 2 {
		t.Errorf("Translator called %d times, want 2", translator.calls)
	}
}

func TestEnrichEntries_CacheReuse(t *testing.T) {
	entries := []vocab.Entry{
		{Name: "cat", PhoneticUK: "kæt", PhoneticUS: "kæt"},
		{Name: "cat", PhoneticUK: "kæt", PhoneticUS: "kæt"},
	}
	translator := &stubTranslator{gloss: "猫"}
	fetcher := &stubFetcher{}

	updated, errCount := enrichEntries(context.Background(), entries, fetcher, translator, translation.NewCache())

	if errCount != 0 || updated != 2 {
		t.Errorf("updated = %d, errCount = %d, want 2 and 0", updated, errCount)
	}
	if translator.calls != 1 {
		t.Errorf("Translator called %d times for a repeated word, want 1", translator.calls)
	}
}

func TestEnrichEntries_ToleratesFailures(t *testing.T) {
	entries := []vocab.Entry{
		{Name: "abandon"},
		{Name: "cat", PhoneticUK: "kæt", PhoneticUS: "kæt"},
	}
	fetcher := &stubFetcher{err: fmt.Errorf("api down")}
	translator := &stubTranslator{err: fmt.Errorf("api down")}

	updated, errCount := enrichEntries(context.Background(), entries, fetcher, translator, translation.NewCache())

	if updated != 0 {
		t.Errorf("updated = %d, want 0", updated)
	}
	// One phonetic failure plus two translation failures.
	if errCount != 3 {
		t.Errorf("errCount = %d, want 3", errCount)
	}
	if entries[0].PhoneticUK != "" || entries[1].Translation != "" {
		t.Error("Entries were modified despite failures")
	}
}
