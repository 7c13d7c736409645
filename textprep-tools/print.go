package main

import (
	"fmt"
	"strings"

	"github.com/glyphwise/textprep/fontbook"
	"github.com/glyphwise/textprep/sanitize"
	"github.com/glyphwise/textprep/script"
	"github.com/pterm/pterm"
)

func printFamilies(book *fontbook.Book) {
	m := book.Manifest()
	data := [][]string{
		{"Family", "Scripts", "Shaping", "Resources", "Status"},
	}
	for i := range m.Families {
		rec := &m.Families[i]
		status := "usable"
		if !book.Usable(rec.FamilyID) {
			status = "EXCLUDED"
		}
		if rec.FamilyID == m.DefaultFamily {
			status += " (default)"
		}
		shaping := rec.Shaping
		if shaping == "" {
			shaping = fontbook.ShapingNone
		}
		data = append(data, []string{
			rec.FamilyID,
			rec.ScriptSet().String(),
			shaping,
			fmt.Sprintf("%d", len(rec.Resources)),
			status,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printReport(report *fontbook.Report) {
	findings := report.Findings()
	if len(findings) == 0 {
		pterm.Info.Println("no findings")
		return
	}
	data := [][]string{
		{"Severity", "Family", "Resource", "Issue"},
	}
	for _, f := range findings {
		data = append(data, []string{
			f.Severity.String(),
			f.FamilyID,
			f.Resource,
			f.Issue,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printPrepared(res sanitize.Result, scripts script.Set, family string) {
	pterm.Printf("sanitized: %q\n", res.Text)
	if len(res.Removed) > 0 {
		hexes := make([]string, len(res.Removed))
		for i, rm := range res.Removed {
			hexes[i] = fmt.Sprintf("%s (%s)", rm.Hex, rm.Name())
		}
		pterm.Printf("removed:   %s\n", strings.Join(hexes, ", "))
	}
	pterm.Printf("scripts:   %v\n", scripts)
	pterm.Printf("family:    %s\n", family)
}
