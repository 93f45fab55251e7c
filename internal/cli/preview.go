package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/pipeline"
)

// previewCommand creates the preview command for interactive layout exploration.
func (c *CLI) previewCommand() *cobra.Command {
	var configPath string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [directory]",
		Short: "Explore justified layouts interactively",
		Long: `Explore justified layouts interactively in the terminal.

The preview command scans the source directory once and then recomputes the
layout live as you change the container width, the same way a gallery page
reflows when a browser window is resized. Rows are drawn as proportional
blocks; widows are highlighted.

Keys:
  ←/→   change container width by 10px
  shift ←/→ (H/L)  change container width by 100px
  m     jump to the mobile breakpoint
  q     quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SourceDir = args[0]
			if err := applyConfigFile(&opts, configPath); err != nil {
				return err
			}
			return c.runPreview(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with engine settings")
	registerLayoutFlags(cmd, &opts)

	return cmd
}

// runPreview scans the gallery and starts the interactive model.
func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options) error {
	runner, err := c.newRunner(false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.SetLayoutDefaults()

	m, err := runner.Scan(ctx, opts)
	if err != nil {
		return fmt.Errorf("scan %s: %w", opts.SourceDir, err)
	}
	if len(m.Images) == 0 {
		printWarning("No images found in %s", opts.SourceDir)
		return nil
	}

	model := newPreviewModel(m, opts)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// PreviewModel - Interactive width exploration
// =============================================================================

const (
	widthStepSmall = 10
	widthStepLarge = 100
	minPreviewWidth = 100
)

var (
	previewRowStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	previewWidowStyle = lipgloss.NewStyle().Foreground(colorYellow)
	previewErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// PreviewModel is the bubbletea model for interactive layout preview.
// Every width change recomputes the layout from the manifest, so what is
// shown always matches what the engine would produce for that width.
type PreviewModel struct {
	manifest *gallery.Manifest
	opts     pipeline.Options

	doc     gallery.LayoutDoc
	layoutErr error

	termWidth int
}

// newPreviewModel creates a preview model and computes the initial layout.
func newPreviewModel(m *gallery.Manifest, opts pipeline.Options) PreviewModel {
	model := PreviewModel{manifest: m, opts: opts, termWidth: 80}
	model.recompute()
	return model
}

// recompute runs the layout engine for the current container width.
func (m *PreviewModel) recompute() {
	doc, err := pipeline.ComputeLayout(m.manifest, m.opts)
	m.doc, m.layoutErr = doc, err
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.adjustWidth(-widthStepSmall)
		case "right":
			m.adjustWidth(widthStepSmall)
		case "shift+left", "H":
			m.adjustWidth(-widthStepLarge)
		case "shift+right", "L":
			m.adjustWidth(widthStepLarge)
		case "m":
			m.opts.ContainerWidth = m.opts.MobileBreakpoint
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
	}
	return m, nil
}

// adjustWidth shifts the container width and recomputes the layout.
func (m *PreviewModel) adjustWidth(delta float64) {
	w := m.opts.ContainerWidth + delta
	if w < minPreviewWidth {
		w = minPreviewWidth
	}
	m.opts.ContainerWidth = w
	m.recompute()
}

func (m PreviewModel) View() string {
	var b strings.Builder

	title := m.manifest.Title
	if title == "" {
		title = m.manifest.Source
	}
	b.WriteString(StyleTitle.Render("Preview: " + title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ width ±10  shift ←/→ ±100  m mobile  q quit"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		StyleDim.Render("container"),
		StyleHighlight.Render(fmt.Sprintf("%.0fpx", m.opts.ContainerWidth))))

	if m.layoutErr != nil {
		b.WriteString("\n" + previewErrStyle.Render("layout error: "+m.layoutErr.Error()) + "\n")
		return b.String()
	}

	mode := "justified"
	if m.doc.Mobile {
		mode = "mobile single-column"
	}
	b.WriteString(fmt.Sprintf("%s %s · %d rows · %d widows · height %.0fpx\n\n",
		StyleDim.Render("layout"), mode, m.doc.RowCount, m.doc.WidowCount, m.doc.ContentHeight))

	b.WriteString(m.renderRows())
	return b.String()
}

// renderRows draws each layout row as a line of proportional blocks.
// Terminal columns stand in for pixels; widow rows use a different color
// and show the trailing filler as dim dashes.
func (m PreviewModel) renderRows() string {
	cols := m.termWidth - 4
	if cols < 20 {
		cols = 20
	}
	scale := float64(cols) / m.opts.ContainerWidth

	var b strings.Builder
	boxes := m.doc.Boxes
	widowStart := len(boxes) - m.doc.WidowCount

	for i := 0; i < len(boxes); {
		// Collect one row by shared Top coordinate
		j := i
		for j < len(boxes) && boxes[j].Top == boxes[i].Top {
			j++
		}

		var line strings.Builder
		for k := i; k < j; k++ {
			w := int(boxes[k].Width * scale)
			if w < 1 {
				w = 1
			}
			cell := strings.Repeat("█", w)
			if k >= widowStart && m.doc.WidowCount > 0 {
				line.WriteString(previewWidowStyle.Render(cell))
			} else {
				line.WriteString(previewRowStyle.Render(cell))
			}
			if k < j-1 {
				line.WriteString(" ")
			}
		}
		if m.doc.Filler != nil && j == len(boxes) {
			fw := int(m.doc.Filler.Width * scale)
			if fw > 0 {
				line.WriteString(" " + StyleDim.Render(strings.Repeat("┄", fw)))
			}
		}

		b.WriteString("  " + line.String())
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %.0fpx", boxes[i].Height)))
		b.WriteString("\n")
		i = j
	}

	return b.String()
}
