package words

import "strings"

// translationHardCap bounds the translation copy regardless of the
// configured maximum.
const translationHardCap = 240

// ParseMode converts a config string (uk, us, both) into a PhoneticMode.
// Unknown values fall back to UK, matching the zero default.
func ParseMode(s string) PhoneticMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "us":
		return PhoneticUS
	case "both":
		return PhoneticBoth
	default:
		return PhoneticUK
	}
}

// String returns the config spelling of the mode.
func (m PhoneticMode) String() string {
	switch m {
	case PhoneticUS:
		return "us"
	case PhoneticBoth:
		return "both"
	default:
		return "uk"
	}
}

// boundedBuilder accumulates up to a fixed number of runes. Appends past the
// limit are cut off mid-string rather than dropped wholesale, mirroring how
// a fixed-capacity display buffer truncates.
type boundedBuilder struct {
	b         strings.Builder
	remaining int
}

func (bb *boundedBuilder) append(s string) {
	if bb.remaining <= 0 {
		return
	}
	for _, r := range s {
		if bb.remaining <= 0 {
			return
		}
		bb.b.WriteRune(r)
		bb.remaining--
	}
}

// FormatSuffix renders the display suffix for the current word, for example
// "  abandon [əˈbændən] · 放弃…". maxChars carries the capacity of the
// original fixed wide-character buffer, terminator included: the result
// never exceeds maxChars-1 characters. The empty string is returned when
// the display is disabled, initialization failed, or no word is selected.
func (s *Store) FormatSuffix(maxChars int) string {
	if maxChars <= 1 {
		return ""
	}
	if !s.cfg.Enabled {
		return ""
	}
	if !s.ensure() {
		return ""
	}
	e, ok := s.Current()
	if !ok {
		return ""
	}

	out := &boundedBuilder{remaining: maxChars - 1}

	// Leading spacing keeps the time readable.
	out.append("  ")
	out.append(e.Name)

	if s.cfg.ShowPhonetic {
		switch s.cfg.PhoneticMode {
		case PhoneticBoth:
			appendBracketed(out, e.PhoneticUK)
			appendBracketed(out, e.PhoneticUS)
		case PhoneticUS:
			appendBracketed(out, e.PhoneticUS)
		default:
			appendBracketed(out, e.PhoneticUK)
		}
	}

	if s.cfg.ShowTranslation && e.Translation != "" {
		out.append(" · ")
		s.appendTranslation(out, e.Translation)
	}

	return out.b.String()
}

func appendBracketed(out *boundedBuilder, phonetic string) {
	if phonetic == "" {
		return
	}
	out.append(" [")
	out.append(phonetic)
	out.append("]")
}

// appendTranslation applies the configured maximum before the buffer cap: a
// translation longer than the maximum is cut there and marked with a single
// ellipsis character.
func (s *Store) appendTranslation(out *boundedBuilder, trans string) {
	max := s.cfg.TranslationMaxLen
	if max <= 0 {
		out.append(trans)
		return
	}
	runes := []rune(trans)
	if len(runes) <= max {
		out.append(trans)
		return
	}
	if max > translationHardCap {
		max = translationHardCap
	}
	out.append(string(runes[:max]))
	out.append("…")
}
