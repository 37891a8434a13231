package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	VocabFile string
	HistoryDB string

	// Display flags
	Enabled           bool
	SwitchInterval    int
	ShowPhonetic      bool
	PhoneticMode      string
	ShowTranslation   bool
	MaxTranslationLen int

	// Mode flags
	PrintCount     int
	Validate       bool
	Enrich         bool
	History        bool
	HistoryLimit   int
	ArchiveHistory bool
	ListModels     bool

	// LLM flags for vocabulary enrichment
	LLMProvider string
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Enabled:           true,
		SwitchInterval:    20,
		ShowPhonetic:      true,
		PhoneticMode:      "uk",
		ShowTranslation:   true,
		MaxTranslationLen: 10,
		HistoryLimit:      20,
		LLMProvider:       "openai",
		OpenAIModel:       "gpt-4o-mini",
		GeminiModel:       "gemini-2.5-flash",
	}
}
