package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	StatusLine   string
	Footer       string
	Notification string
	Dark         bool
}

// palette holds the styles for one theme. Both panes share panelWidth so
// the two-column layout stays aligned.
type palette struct {
	header lipgloss.Style
	status lipgloss.Style
	errs   lipgloss.Style
	panel  lipgloss.Style
	banner lipgloss.Style
	footer lipgloss.Style
}

const panelWidth = 58

func newPalette(accent, ok, warn, dim string) palette {
	return palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color(ok)),
		errs:   lipgloss.NewStyle().Foreground(lipgloss.Color(warn)),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		banner: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1).Foreground(lipgloss.Color(warn)),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
	}
}

var (
	darkPalette  = newPalette("12", "10", "9", "8")
	lightPalette = newPalette("4", "2", "1", "7")
)

func RenderApp(data AppData) string {
	p := lightPalette
	if data.Dark {
		p = darkPalette
	}

	left := p.panel.Width(panelWidth).Render(data.LeftPane)
	right := p.panel.Width(panelWidth).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := p.status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = p.errs.Render(data.StatusLine)
	}

	lines := []string{
		p.header.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, p.banner.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, p.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// TerminalPrefersDark reports the terminal background so the startup
// theme can follow the platform like the settings default requires.
func TerminalPrefersDark() bool {
	return lipgloss.HasDarkBackground()
}

func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
