// Package observability provides formatted output utilities for verbose CLI
// mode and the structured logger factory.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/types"
	"github.com/jonathan/portfolio-builder/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPortfolio outputs a human-readable summary of the display projection.
func (p *Printer) PrintPortfolio(portfolio *types.Portfolio) {
	if portfolio == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", portfolio.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", portfolio.PersonalInfo.Title))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", portfolio.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Location: %s\n", portfolio.PersonalInfo.Location))
	sb.WriteString(fmt.Sprintf("Template: %s\n", portfolio.Template))
	sb.WriteString("\n")

	if len(portfolio.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(portfolio.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", portfolio.Skills[i]))
		}
		if len(portfolio.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(portfolio.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience:     %d entries\n", len(portfolio.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d entries\n", len(portfolio.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d entries\n", len(portfolio.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d entries\n", len(portfolio.Certifications)))
	sb.WriteString(fmt.Sprintf("Achievements:   %d entries\n", len(portfolio.Achievements)))
	sb.WriteString(fmt.Sprintf("Languages:      %d entries\n", len(portfolio.Languages)))
	if portfolio.CV != nil {
		sb.WriteString(fmt.Sprintf("CV:             %s\n", portfolio.CV.FileName))
	}

	p.printBox("PORTFOLIO", sb.String())
}

// PrintChangedSections outputs the unsaved-changes summary.
func (p *Printer) PrintChangedSections(sections []string) {
	var sb strings.Builder

	if len(sections) == 0 {
		sb.WriteString("No unsaved changes.\n")
	} else {
		sb.WriteString(fmt.Sprintf("%d section(s) with unsaved changes:\n", len(sections)))
		for _, s := range sections {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("UNSAVED CHANGES", sb.String())
}

// PrintValidation outputs a validation result, one line per failing field
// path in sorted order.
func (p *Printer) PrintValidation(result validation.Result) {
	var sb strings.Builder

	if result.Valid {
		sb.WriteString("Profile is valid.\n")
	} else {
		sb.WriteString(fmt.Sprintf("%d validation error(s):\n", len(result.Errors)))
		keys := make([]string, 0, len(result.Errors))
		for k := range result.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, result.Errors[k]))
		}
	}

	p.printBox("VALIDATION", sb.String())
}
