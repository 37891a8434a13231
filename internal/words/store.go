package words

import (
	"time"

	"github.com/projiaq/Catime/internal/vocab"
)

// PhoneticMode selects which transcription FormatSuffix renders.
type PhoneticMode int

const (
	PhoneticUK PhoneticMode = iota
	PhoneticUS
	PhoneticBoth
)

// Config is the externally owned display configuration. The store reads it
// on every call and never writes it, so the host can change settings at any
// time without touching the store.
type Config struct {
	// Enabled gates Tick and FormatSuffix entirely.
	Enabled bool

	// SwitchIntervalSec is the auto-switch interval. 0 disables auto-switch.
	SwitchIntervalSec int

	// ShowPhonetic appends the bracketed transcription(s).
	ShowPhonetic bool

	// PhoneticMode picks UK, US or both transcriptions.
	PhoneticMode PhoneticMode

	// ShowTranslation appends the translation after a separator.
	ShowTranslation bool

	// TranslationMaxLen truncates the translation to this many characters
	// plus an ellipsis. 0 means unlimited.
	TranslationMaxLen int
}

// Options tweak store construction.
type Options struct {
	// Now returns the monotonic tick counter in milliseconds. It seeds the
	// starting index and arms auto-switch deadlines. Defaults to the wall
	// clock; tests inject a deterministic source.
	Now func() uint64
}

// Store holds the parsed vocabulary and the current-word cursor. One store
// serves one clock window; create it with New and drive it from a single
// goroutine.
type Store struct {
	cfg      *Config
	provider vocab.Provider
	now      func() uint64

	entries    []vocab.Entry
	current    int
	nextSwitch uint64

	// Initialization is attempted once; the outcome sticks until Shutdown.
	attempted bool
	initErr   error
}

// New creates a store reading cfg on every call and loading the vocabulary
// from provider on first use.
func New(cfg *Config, provider vocab.Provider, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = func() uint64 { return uint64(time.Now().UnixMilli()) }
	}
	return &Store{
		cfg:      cfg,
		provider: provider,
		now:      now,
		current:  -1,
	}
}

// Init loads and parses the vocabulary. Only the first call after
// construction (or after Shutdown) does any work: a failure is remembered
// and returned again rather than re-fetching the resource on every lazy
// call from the UI loop.
//
// On success the starting index is pseudo-random (tick count modulo entry
// count) so the display does not always open on the first word.
func (s *Store) Init() error {
	if s.attempted {
		return s.initErr
	}
	s.attempted = true

	buf, err := s.provider.Load()
	if err != nil {
		s.initErr = err
		return err
	}

	entries, err := vocab.ParseTSV(buf)
	if err != nil {
		s.initErr = err
		return err
	}

	s.entries = entries
	tick := s.now()
	s.current = int(tick % uint64(len(entries)))
	s.armDeadline(tick)
	return nil
}

// Shutdown releases the entries and returns the store to the uninitialized
// state. Safe to call on a store that never initialized; a subsequent Init
// retries the load.
func (s *Store) Shutdown() {
	s.entries = nil
	s.current = -1
	s.nextSwitch = 0
	s.attempted = false
	s.initErr = nil
}

// Count returns the number of loaded entries.
func (s *Store) Count() int {
	return len(s.entries)
}

// Current returns the entry under the cursor, if any.
func (s *Store) Current() (vocab.Entry, bool) {
	if s.current < 0 || s.current >= len(s.entries) {
		return vocab.Entry{}, false
	}
	return s.entries[s.current], true
}

// Next advances to the next word, wrapping past the end, and re-arms the
// auto-switch deadline. It reports whether the cursor actually moved, which
// is false only when the store holds fewer than two entries.
func (s *Store) Next() bool {
	if !s.ensure() {
		return false
	}
	changed := s.setIndex(s.current + 1)
	s.armDeadline(s.now())
	return changed
}

// Tick advances the word when the auto-switch deadline has passed. It is a
// cheap no-op while disabled, while the interval is 0, or while the deadline
// is in the future, so the UI may call it on every refresh.
//
// A late tick advances exactly one step no matter how many intervals have
// elapsed; the deadline re-arms relative to now.
func (s *Store) Tick(now uint64) bool {
	if !s.cfg.Enabled {
		return false
	}
	if !s.ensure() {
		return false
	}
	if s.cfg.SwitchIntervalSec <= 0 {
		return false
	}
	// Signed difference keeps the comparison correct across tick-counter
	// wraparound.
	if int64(now-s.nextSwitch) < 0 {
		return false
	}
	changed := s.setIndex(s.current + 1)
	s.nextSwitch = now + uint64(s.cfg.SwitchIntervalSec)*1000
	return changed
}

// ensure lazily runs the one-shot initialization and reports whether any
// entries are available.
func (s *Store) ensure() bool {
	if !s.attempted {
		s.Init()
	}
	return len(s.entries) > 0
}

func (s *Store) setIndex(idx int) bool {
	if len(s.entries) == 0 {
		return false
	}
	if idx < 0 || idx >= len(s.entries) {
		idx = 0
	}
	if idx == s.current {
		return false
	}
	s.current = idx
	return true
}

func (s *Store) armDeadline(now uint64) {
	if s.cfg.SwitchIntervalSec > 0 {
		s.nextSwitch = now + uint64(s.cfg.SwitchIntervalSec)*1000
	}
}
