package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/nonsonwune/rankmatch/admission"
	"github.com/nonsonwune/rankmatch/equivalence"
	"github.com/olekukonko/tablewriter"
)

const notAvailable = "n/a"

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)

	return table
}

func heading(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, color.CyanString("\n"+format, args...))
}

func note(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, color.YellowString(format, args...))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}

// mappingText renders a mapping as "score (#rank)".
func mappingText(res equivalence.Result) string {
	return fmt.Sprintf("%d (#%d)", res.TargetScore, res.TargetRank)
}

func cellText(c equivalence.Cell) string {
	if !c.OK() {
		return notAvailable
	}

	return mappingText(c.Result)
}

func equivalentRankText(res equivalence.Result) string {
	if !res.HasEquivalentRank() {
		return "-"
	}

	return strconv.FormatFloat(res.EquivalentRank, 'f', 2, 64)
}

func renderRow(w io.Writer, row equivalence.Row) {
	table := newTable(w, "Target Year", "Method", "Score", "Rank", "Equivalent Rank")
	for _, c := range row.Cells {
		if !c.OK() {
			table.Append([]string{
				strconv.Itoa(c.TargetYear), string(c.Method), notAvailable,
				color.RedString(c.Err.Error()), "-",
			})

			continue
		}
		table.Append([]string{
			strconv.Itoa(c.TargetYear), string(c.Method),
			strconv.Itoa(c.Result.TargetScore), strconv.Itoa(c.Result.TargetRank),
			equivalentRankText(c.Result),
		})
	}
	table.Render()
}

func renderRange(w io.Writer, rows []equivalence.Row, targetYears []int) {
	header := []string{"Score", "Rank"}
	for _, ty := range targetYears {
		for _, m := range equivalence.Methods {
			header = append(header, fmt.Sprintf("%d %s", ty, m))
		}
	}

	table := newTable(w, header...)
	for _, row := range rows {
		line := []string{strconv.Itoa(row.SourceScore), strconv.Itoa(row.SourceRank)}
		for _, ty := range targetYears {
			for _, m := range equivalence.Methods {
				c, ok := row.Cell(ty, m)
				if !ok {
					line = append(line, notAvailable)
					continue
				}
				line = append(line, cellText(c))
			}
		}
		table.Append(line)
	}
	table.Render()
}

func tierText(t admission.Tier) string {
	switch t {
	case admission.TierVeryHigh, admission.TierHigh:
		return color.GreenString(t.String())
	case admission.TierPromising, admission.TierBorderline:
		return color.YellowString(t.String())
	default:
		return color.RedString(t.String())
	}
}

func renderOutcomes(w io.Writer, outcomes []admission.Outcome) {
	table := newTable(w, "Program", "Prior Min Score", "Prior Min Rank", "Seats", "Rank Advantage", "Probability", "Tier")
	for _, o := range outcomes {
		if !o.Computable() {
			table.Append([]string{
				o.Cutoff.ProgramName, strconv.Itoa(o.Cutoff.MinScore), notAvailable,
				strconv.Itoa(o.Cutoff.SeatsAdmitted), notAvailable, notAvailable,
				color.RedString("uncomputable"),
			})

			continue
		}
		res := o.Result
		table.Append([]string{
			res.ProgramName,
			strconv.Itoa(res.PriorMinScore),
			strconv.Itoa(res.PriorMinRank),
			strconv.Itoa(res.PriorSeats),
			fmt.Sprintf("%+d", res.RankAdvantage),
			fmt.Sprintf("%.1f%%", res.Probability*100),
			tierText(res.Tier),
		})
	}
	table.Render()
}
