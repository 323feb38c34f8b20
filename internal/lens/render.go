package lens

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"flightlens/internal/flight"

	"github.com/charmbracelet/lipgloss"
)

const Disclaimer = "Crucial Disclaimer: This data is generated by a large language model for Flight Lens and is not sourced from real-time flight tracking databases. It is illustrative and should not be used for actual flight planning or decision-making. Information may be inaccurate, incomplete, or entirely fictitious. When in doubt try again."

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"hint":         func() string { return Hint },
	"disclaimer":   func() string { return Disclaimer },
	"scoreText":    flight.ScoreText,
	"scorePercent": flight.ScorePercent,
	"rating":       flight.ReliabilityRating,
}).ParseFS(templateFS, "templates/index.html"))

func RenderHTML(w io.Writer, v View) error {
	return pageTemplate.Execute(w, v)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7E22CE"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BFDBFE")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#F87171")).
			Foreground(lipgloss.Color("#B91C1C")).
			Padding(0, 1)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Italic(true)
	disclaimerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")).Italic(true).Width(72)

	bandColors = map[string]lipgloss.Color{
		"green":  lipgloss.Color("#22C55E"),
		"yellow": lipgloss.Color("#EAB308"),
		"red":    lipgloss.Color("#EF4444"),
		"gray":   lipgloss.Color("#9CA3AF"),
	}
)

const barWidth = 20

// RenderTerminal draws a view for the CLI.
func RenderTerminal(v View) string {
	var b strings.Builder

	switch v.Phase {
	case Idle:
		b.WriteString("Enter a flight number to get aircraft details via Flight Lens.\n")
	case Loading:
		b.WriteString("Generating Flight Data...\n")
	case Error:
		body := labelStyle.Render("Error:") + "\n" + v.Err
		if v.ShowHint() {
			body += "\n" + hintStyle.Render(Hint)
		}
		b.WriteString(errorStyle.Render(body))
		b.WriteString("\n")
	case Success:
		b.WriteString(renderSuccess(v))
	}
	return b.String()
}

func renderSuccess(v View) string {
	var lines []string
	lines = append(lines, titleStyle.Render("Flight Lens Details for "+v.Query), "")

	if v.Report != nil {
		for i, section := range v.Report.Sections() {
			if i > 0 {
				lines = append(lines, "")
			}
			for _, e := range section {
				lines = append(lines, labelStyle.Render(e.Label+":")+" "+e.Value)
			}
		}
		lines = append(lines, "", renderScore(v.Report.EstimatedReliabilityScore))
	} else {
		lines = append(lines, v.Text)
	}

	lines = append(lines, "", disclaimerStyle.Render(Disclaimer))
	return cardStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func renderScore(score *float64) string {
	rating := flight.ReliabilityRating(score)
	filled := int(flight.ScorePercent(score) / 100 * barWidth)
	bar := lipgloss.NewStyle().Foreground(bandColors[rating.Band]).Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%s %s %s %s",
		labelStyle.Render("Estimated Reliability Score:"),
		flight.ScoreText(score),
		bar,
		rating.Label,
	)
}
