package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/modaltheory/honeray/modulation"
	"github.com/modaltheory/honeray/theory"
)

var sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

func runStats(cmd *cobra.Command, args []string) error {
	report, err := modulation.NewSweep().Run()
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	out := cmd.OutOrStdout()
	letters := theory.Letters()

	fmt.Fprintln(out, sectionStyle.Render("VALID MODULATIONS PER STARTING KEY"))
	fmt.Fprintln(out, transitionTable(report, letters))

	fmt.Fprintln(out, sectionStyle.Render("CRITERION VIOLATION FREQUENCIES"))
	fmt.Fprintln(out, violationTable(report))

	fmt.Fprintln(out, sectionStyle.Render("SUMMARY"))
	fmt.Fprintf(out, "Valid modulations: %d of %d\n", report.ValidCount, report.TotalCount)
	fmt.Fprintf(out, "Probability of a random modulation obeying Honeray's criterion: %.6f\n",
		report.ValidFraction)
	return nil
}

// transitionTable renders one row per starting key: its total valid count
// followed by the distribution of valid modulations over ending keys.
func transitionTable(report *modulation.Report, letters [12]string) *table.Table {
	headers := make([]string, 0, 14)
	headers = append(headers, "Start", "Valid")
	headers = append(headers, letters[:]...)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for si, startKey := range letters {
		row := make([]string, 0, 14)
		row = append(row, startKey, strconv.Itoa(report.PerStartKey[si]))
		for ei := range letters {
			row = append(row, strconv.Itoa(report.Transitions[si][ei]))
		}
		t = t.Row(row...)
	}
	return t
}

// violationTable renders how often each sub-condition was violated across
// the sweep. Counts are independent: one failing modulation can violate
// several conditions at once.
func violationTable(report *modulation.Report) *table.Table {
	headers := make([]string, modulation.ConditionCount)
	row := make([]string, modulation.ConditionCount)
	for i, name := range modulation.ConditionNames {
		headers[i] = "!" + name
		row[i] = strconv.Itoa(report.ConditionFailures[i])
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Row(row...)
}
