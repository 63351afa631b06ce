package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

//nolint:gochecknoglobals // immutable styles
var (
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Banner renders the greeting box printed before any subcommand output.
func Banner() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("#000")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("5")).
		Padding(1).
		Margin(1).
		Render("DHIS2-SCP-CLI")
}

// writeReport prints every collected problem of a run and returns the list's
// error, so that any problem fails the process.
func writeReport(w io.Writer, subject string, errs *entities.VerificationErrorList) error {
	if errs.Len() == 0 {
		_, _ = fmt.Fprintln(w, passStyle.Render("PASS: "+subject))
		return nil
	}

	var sb strings.Builder
	sb.WriteString(failStyle.Render(fmt.Sprintf("FAIL: %s (%d errors)", subject, errs.Len())))
	sb.WriteString("\n")
	for _, item := range errs.Items() {
		sb.WriteString(errorStyle.Render("  - " + item.Text))
		sb.WriteString("\n")
	}
	_, _ = fmt.Fprint(w, sb.String())
	return errs.Err()
}
