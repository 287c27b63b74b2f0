package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"justmeditation/internal/tips"
)

func newTipsCmd(opts *rootOptions) *cobra.Command {
	var (
		tag      string
		listTags bool
	)
	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Print meditation tips",
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTags {
				return printTagTable(opts.out)
			}
			list := tips.WithTag(tag)
			if len(list) == 0 {
				return fmt.Errorf("no tips tagged %q (available: %s)", tag, strings.Join(tips.Tags(), ", "))
			}
			printTips(opts.out.out, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "Only show tips with this tag")
	cmd.Flags().BoolVar(&listTags, "tags", false, "List tags and the tips that carry them")
	return cmd
}

func printTips(w io.Writer, list []tips.Tip) {
	fmt.Fprintln(w, heading(tips.Title))
	fmt.Fprintln(w, faint(tips.Subtitle))
	for _, tip := range list {
		fmt.Fprintln(w)
		fmt.Fprintln(w, heading(tip.Title))
		fmt.Fprintf(w, "  %s\n", tip.Body)
		fmt.Fprintf(w, "  %s\n", faint("#"+strings.Join(tip.Tags, " #")))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, faint(tips.Footer))
}

func printTagTable(out *printer) error {
	table := out.Table([]string{"Tag", "Tips"})
	for _, tag := range tips.Tags() {
		var titles []string
		for _, tip := range tips.WithTag(tag) {
			titles = append(titles, tip.Title)
		}
		if err := table.Append([]string{tag, strings.Join(titles, "; ")}); err != nil {
			return fmt.Errorf("append tag row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render tag table: %w", err)
	}
	return nil
}
