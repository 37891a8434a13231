package gui

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/projiaq/Catime/internal"
	"github.com/projiaq/Catime/internal/history"
	"github.com/projiaq/Catime/internal/vocab"
	"github.com/projiaq/Catime/internal/words"
)

// refreshInterval is how often the clock face updates. The word store's
// Tick is cheap when idle, so it simply rides along.
const refreshInterval = 250 * time.Millisecond

// suffixCapacity bounds the rendered word suffix, matching the clock's
// display buffer.
const suffixCapacity = 128

// Application is the clock window with the word suffix display.
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	timeText *canvas.Text
	wordText *canvas.Text
	nextBtn  *ttwidget.Button

	// Word state
	display      *words.Config
	store        *words.Store
	recorder     *history.Recorder
	lastRecorded string

	// Background refresh
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds GUI application configuration
type Config struct {
	Display   *words.Config
	Provider  vocab.Provider
	HistoryDB string
}

// New creates a new GUI application
func New(config *Config) *Application {
	if config == nil {
		config = &Config{}
	}
	if config.Display == nil {
		config.Display = &words.Config{Enabled: true, SwitchIntervalSec: 20}
	}
	if config.Provider == nil {
		config.Provider = vocab.EmbeddedProvider{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("com.github.projiaq.catime-words")

	a := &Application{
		app:     myApp,
		display: config.Display,
		store:   words.New(config.Display, config.Provider, words.Options{}),
		ctx:     ctx,
		cancel:  cancel,
	}

	if config.HistoryDB != "" {
		rec, err := history.Open(config.HistoryDB)
		if err != nil {
			// The clock still works without a history; just say so.
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			a.recorder = rec
		}
	}

	a.setupUI()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Catime Words v%s", internal.Version))
	a.window.Resize(fyne.NewSize(640, 260))

	a.timeText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	a.timeText.TextSize = 64
	a.timeText.TextStyle = fyne.TextStyle{Monospace: true}
	a.timeText.Alignment = fyne.TextAlignCenter

	a.wordText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	a.wordText.TextSize = 18
	a.wordText.Alignment = fyne.TextAlignCenter

	a.nextBtn = ttwidget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), a.onNext)

	enabledCheck := widget.NewCheck("Words", func(on bool) {
		a.display.Enabled = on
		a.refresh()
	})
	enabledCheck.SetChecked(a.display.Enabled)

	phoneticCheck := widget.NewCheck("Phonetic", func(on bool) {
		a.display.ShowPhonetic = on
		a.refresh()
	})
	phoneticCheck.SetChecked(a.display.ShowPhonetic)

	modeSelect := widget.NewSelect([]string{"uk", "us", "both"}, func(s string) {
		a.display.PhoneticMode = words.ParseMode(s)
		a.refresh()
	})
	modeSelect.SetSelected(a.display.PhoneticMode.String())

	translationCheck := widget.NewCheck("Translation", func(on bool) {
		a.display.ShowTranslation = on
		a.refresh()
	})
	translationCheck.SetChecked(a.display.ShowTranslation)

	controls := container.NewHBox(
		enabledCheck,
		phoneticCheck,
		modeSelect,
		translationCheck,
		widget.NewSeparator(),
		a.nextBtn,
	)

	content := container.NewBorder(
		nil,
		container.NewCenter(controls),
		nil, nil,
		container.NewVBox(
			a.timeText,
			a.wordText,
		),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.nextBtn.SetToolTip("Next word")

	a.window.SetOnClosed(func() {
		a.cancel()
		a.store.Shutdown()
		if a.recorder != nil {
			a.recorder.Close()
		}
	})

	a.refresh()
}

// Run starts the GUI application
func (a *Application) Run() error {
	go a.refreshLoop()
	a.window.ShowAndRun()
	return nil
}

// refreshLoop drives the clock face and the word auto-switch. All store
// access happens on the Fyne main thread; the store itself is not
// goroutine safe.
func (a *Application) refreshLoop() {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			fyne.Do(func() {
				a.store.Tick(uint64(time.Now().UnixMilli()))
				a.refresh()
			})
		}
	}
}

// onNext forces the next word
func (a *Application) onNext() {
	a.store.Next()
	a.refresh()
}

// refresh redraws the clock face and the word suffix
func (a *Application) refresh() {
	a.timeText.Text = time.Now().Format("15:04:05")
	a.timeText.Refresh()

	a.wordText.Text = a.store.FormatSuffix(suffixCapacity)
	a.wordText.Refresh()

	a.recordShown()
}

// recordShown logs the current word once per appearance.
func (a *Application) recordShown() {
	if a.recorder == nil || !a.display.Enabled {
		return
	}
	e, ok := a.store.Current()
	if !ok || e.Name == a.lastRecorded {
		return
	}
	if err := a.recorder.Record(e.Name); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record %q: %v\n", e.Name, err)
		return
	}
	a.lastRecorded = e.Name
}
