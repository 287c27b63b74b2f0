package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	warningPrefix = color.New(color.FgHiYellow).Sprint("⚠")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	heading       = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	faint         = color.New(color.Faint).SprintFunc()
)

// printer writes prefixed, colored status lines.
type printer struct {
	out    io.Writer
	errOut io.Writer
}

func newPrinter(out, errOut io.Writer) *printer {
	return &printer{out: out, errOut: errOut}
}

func (p *printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", infoPrefix, fmt.Sprintf(format, args...))
}

func (p *printer) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", successPrefix, fmt.Sprintf(format, args...))
}

func (p *printer) Warning(format string, args ...any) {
	fmt.Fprintf(p.errOut, "%s %s\n", warningPrefix, fmt.Sprintf(format, args...))
}

func (p *printer) Error(message string) {
	fmt.Fprintf(p.errOut, "%s Error: %s\n", errorPrefix, message)
}

// Table creates a borderless, left aligned table on the standard output.
func (p *printer) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
