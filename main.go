package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type options struct {
	pngOut   string
	gifOut   string
	txtOut   string
	width    int
	height   int
	frames   int
	simulate time.Duration
	sweep    bool
}

func main() {
	config := loadConfig()

	var opts options
	var variant string
	flag.StringVar(&config.NamesSource, "names", config.NamesSource, "Name list: JSON file path or http(s) URL")
	flag.StringVar(&variant, "variant", config.Variant.String(), "View: 'names' or 'shatter'")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Random seed for layout and forces (0 = time based)")
	flag.IntVar(&config.FPS, "fps", config.FPS, "Frames per second")
	flag.StringVar(&config.Header, "header", config.Header, "Header text of the name field")
	flag.StringVar(&opts.pngOut, "png", "", "Render headless and save the final frame as PNG")
	flag.StringVar(&opts.gifOut, "gif", "", "Render headless and save an animated GIF")
	flag.StringVar(&opts.txtOut, "txt", "", "Render headless and save the final frame as Braille text")
	flag.IntVar(&opts.width, "width", 1024, "Headless viewport width in pixels")
	flag.IntVar(&opts.height, "height", 768, "Headless viewport height in pixels")
	flag.IntVar(&opts.frames, "frames", 120, "Number of GIF frames")
	flag.DurationVar(&opts.simulate, "simulate", 0, "Headless: run the live loop this long before exporting")
	flag.BoolVar(&opts.sweep, "sweep", true, "Headless: sweep the pointer across the field")
	flag.Parse()

	if v, ok := parseVariant(variant); ok {
		config.Variant = v
	} else {
		log.Fatalf("unknown variant %q", variant)
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	faces, err := LoadTypefaces()
	if err != nil {
		log.Fatal(err)
	}

	if opts.pngOut != "" || opts.gifOut != "" || opts.txtOut != "" {
		if err := runHeadless(config, faces, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	logFile, err := tea.LogToFile(filepath.Join(os.TempDir(), "particletext.log"), "particletext")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	p := tea.NewProgram(
		initialModel(config, faces),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newContent(config *Config, names []string) Content {
	content := DefaultContent()
	content.NameHeader = config.Header
	content.Names = names
	return content
}

func runHeadless(config *Config, faces *Typefaces, opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	names := LoadNames(ctx, nil, config.NamesSource)
	field := NewField(config.Variant, float64(opts.width), float64(opts.height))
	builder := NewBuilder(NewSampler(faces), newContent(config, names))
	a := NewAnimator(field, builder, NewRenderer(opts.width, opts.height, config.ParticleSize), config.Seed)
	a.Rebuild(config.Seed)

	if opts.simulate > 0 {
		runCtx, cancel := context.WithTimeout(ctx, opts.simulate)
		defer cancel()
		ticker := time.NewTicker(time.Second / time.Duration(config.FPS))
		defer ticker.Stop()
		frame := 0
		err := Run(runCtx, ticker.C, func() {
			if opts.sweep {
				t := float64(frame%config.FPS) / float64(config.FPS)
				field.MovePointer(Vec{X: t * field.Width, Y: field.Height / 2})
			}
			a.Frame()
			frame++
		})
		if err != nil && ctx.Err() != nil {
			return err
		}
		field.ResetPointer()
		log.Printf("simulated %d frames", frame)
	}

	if opts.gifOut != "" {
		path, err := config.GetExportPath(opts.gifOut)
		if err != nil {
			return err
		}
		if err := exportGIF(a, path, opts.frames, config.FPS, opts.sweep); err != nil {
			return fmt.Errorf("failed to export gif: %w", err)
		}
		log.Printf("saved %s", path)
	}
	if opts.pngOut != "" {
		path, err := config.GetExportPath(opts.pngOut)
		if err != nil {
			return err
		}
		if err := exportPNG(a, path); err != nil {
			return fmt.Errorf("failed to export png: %w", err)
		}
		log.Printf("saved %s", path)
	}
	if opts.txtOut != "" {
		path, err := config.GetExportPath(opts.txtOut)
		if err != nil {
			return err
		}
		term := NewTermRenderer(config.DotSize)
		cols := int(field.Width / (2 * term.dotSize))
		rows := int(field.Height / (4 * term.dotSize))
		if err := exportVisualTXT(field, term, cols, rows, path); err != nil {
			return fmt.Errorf("failed to export text: %w", err)
		}
		log.Printf("saved %s", path)
	}
	return nil
}

type frameMsg time.Time

type namesLoadedMsg []string

type model struct {
	width          int
	height         int
	config         *Config
	animator       *Animator
	term           *TermRenderer
	gestures       *Gestures
	history        *History
	seeds          *rand.Rand
	mode           Mode
	help           bool
	errorMessage   string
	successMessage string
	loadNames      func(context.Context, string) []string
	now            func() time.Time
}

func initialModel(config *Config, faces *Typefaces) model {
	field := NewField(config.Variant, 0, 0)
	builder := NewBuilder(NewSampler(faces), newContent(config, nil))
	return model{
		config:   config,
		animator: NewAnimator(field, builder, nil, config.Seed),
		term:     NewTermRenderer(config.DotSize),
		gestures: &Gestures{},
		history:  &History{},
		seeds:    rand.New(rand.NewSource(config.Seed)),
		mode:     ModeLoading,
		loadNames: func(ctx context.Context, source string) []string {
			return LoadNames(ctx, nil, source)
		},
		now: time.Now,
	}
}

func (m model) field() *Field {
	return m.animator.Field
}

func (m model) canvasRows() int {
	return max(m.height-1, 1)
}

func (m model) tick() tea.Cmd {
	fps := m.config.FPS
	if fps < 1 {
		fps = defaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	source := m.config.NamesSource
	load := m.loadNames
	return tea.Batch(func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return namesLoadedMsg(load(ctx, source))
	}, m.tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.term.FieldSize(m.width, m.canvasRows())
		if m.mode == ModeRunning {
			m.animator.Resize(w, h)
		} else {
			m.field().Width, m.field().Height = w, h
		}
		return m, nil

	case namesLoadedMsg:
		m.animator.Builder.SetNames(msg)
		m.mode = ModeRunning
		m.animator.Rebuild(m.animator.Seed())
		return m, nil

	case frameMsg:
		if m.mode == ModeRunning {
			m.animator.Tick()
		}
		return m, m.tick()

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	if m.mode != ModeRunning || m.help {
		return m
	}
	f := m.field()
	// leaving the canvas cells, onto the status row or past the edge, is a
	// mouse leave
	if msg.X < 0 || msg.Y < 0 || msg.X >= m.width || msg.Y >= m.canvasRows() {
		f.ResetPointer()
		return m
	}
	pos := m.term.CellCenter(msg.X, msg.Y)

	switch msg.Type {
	case tea.MouseMotion:
		f.MovePointer(pos)
	case tea.MouseLeft:
		switch m.gestures.Press(f, pos, m.now()) {
		case ClickRegenerate:
			m.regenerate()
		case ClickNavigate:
			m.switchVariant(VariantNameField)
		}
	case tea.MouseRelease:
		m.gestures.Release(f)
	}
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.help {
		switch key {
		case "esc", "q", "?":
			m.help = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
	case "r":
		m.regenerate()
	case "u":
		if seed, ok := m.history.Undo(m.animator.Seed()); ok {
			m.animator.Rebuild(seed)
		} else {
			m.errorMessage = "Nothing to undo"
		}
	case "ctrl+r":
		if seed, ok := m.history.Redo(m.animator.Seed()); ok {
			m.animator.Rebuild(seed)
		} else {
			m.errorMessage = "Nothing to redo"
		}
	case "v":
		if m.field().Variant == VariantShatter {
			m.switchVariant(VariantNameField)
		} else {
			m.switchVariant(VariantShatter)
		}
	case "p":
		m.pasteNames()
	case "y":
		if err := copyToClipboard(m.term.RenderPlain(m.field(), m.width, m.canvasRows())); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.successMessage = "Frame copied to clipboard"
		}
	case "s":
		m.export(FileOpSavePNG)
	case "t":
		m.export(FileOpSaveVisualTXT)
	}
	return m, nil
}

func (m *model) regenerate() {
	if m.mode != ModeRunning {
		return
	}
	m.history.Record(m.animator.Seed())
	m.animator.Rebuild(m.seeds.Int63())
}

func (m *model) switchVariant(v Variant) {
	f := m.field()
	f.Variant = v
	f.ResetPointer()
	if m.mode == ModeRunning {
		m.animator.Rebuild(m.animator.Seed())
	}
}

func (m *model) pasteNames() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
		return
	}
	names := parsePastedNames(text)
	if len(names) == 0 {
		m.errorMessage = "Clipboard holds no names"
		return
	}
	m.animator.Builder.SetNames(names)
	m.regenerate()
	m.successMessage = fmt.Sprintf("Loaded %d names from clipboard", len(names))
}

func (m *model) export(op FileOperation) {
	f := m.field()
	stamp := m.now().Format("20060102-150405")
	var (
		name string
		err  error
	)
	switch op {
	case FileOpSavePNG:
		name = fmt.Sprintf("particles-%s.png", stamp)
		a := *m.animator
		a.Renderer = NewRenderer(int(f.Width), int(f.Height), m.config.ParticleSize)
		var path string
		if path, err = m.config.GetExportPath(name); err == nil {
			err = exportPNG(&a, path)
			name = path
		}
	case FileOpSaveVisualTXT:
		name = fmt.Sprintf("particles-%s.txt", stamp)
		var path string
		if path, err = m.config.GetExportPath(name); err == nil {
			err = exportVisualTXT(f, m.term, m.width, m.canvasRows(), path)
			name = path
		}
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("Saved %s", name)
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#55ff55"))
)

func (m model) statusLine() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	if m.mode == ModeLoading {
		return statusStyle.Render("Loading names...")
	}
	f := m.field()
	return statusStyle.Render(fmt.Sprintf("%s | %s | %d particles | gen %d | ? help",
		f.Variant, f.Layout, len(f.Particles), f.Generation))
}

func (m model) helpView() string {
	helpLines := []string{
		"Particle Text Help",
		"==================",
		"",
		"Pointer:",
		"--------",
		"  move             Push particles away from the pointer",
		"  click            Regenerate the field (double click on narrow terminals)",
		"  click hotspot    Leave the statement for the name field",
		"",
		"Keys:",
		"-----",
		"  r                Regenerate the field",
		"  u / ctrl+r       Step back / forward through regenerated layouts",
		"  v                Switch between name field and statement",
		"  p                Load names from the clipboard (JSON or one per line)",
		"  y                Copy the current frame to the clipboard",
		"  s                Save the current frame as PNG",
		"  t                Save the current frame as text",
		"  ?                Toggle help",
		"  q                Quit",
	}
	return strings.Join(helpLines, "\n")
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width < 1 || m.height < 1 {
		return ""
	}

	var result strings.Builder
	if m.mode == ModeRunning {
		for _, line := range m.term.Render(m.field(), m.width, m.canvasRows()) {
			result.WriteString(line)
			result.WriteString("\n")
		}
	} else {
		result.WriteString(strings.Repeat("\n", m.canvasRows()))
	}
	result.WriteString(m.statusLine())
	return result.String()
}
