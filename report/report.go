// Package report renders solver traces for humans and for plotting tools.
//
// It consumes only the numeric estimate column of each trace (see
// solver.Estimates) and knows nothing about the methods themselves: a
// Series is just a name, an ordered estimate list and a termination
// label. Comparison writes a side-by-side per-iteration table with a
// final-approximations block; CSV writes the same data
// comma-separated for external plotting.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Series is one method's estimate-per-iteration column.
type Series struct {
	Name      string
	Estimates []complex128
	Reason    string
}

// Comparison writes a per-iteration comparison grid across all series,
// padding shorter columns with "-", followed by the final approximation
// of every series. Series with empty traces appear only in the final
// block, flagged by their termination reason.
func Comparison(w io.Writer, series []Series) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := make([]string, 0, len(series)+1)
	header = append(header, "Iter")
	rows := 0
	for _, s := range series {
		header = append(header, s.Name)
		if len(s.Estimates) > rows {
			rows = len(s.Estimates)
		}
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i := 0; i < rows; i++ {
		cells := make([]string, 0, len(series)+1)
		cells = append(cells, fmt.Sprintf("%d", i))
		for _, s := range series {
			if i < len(s.Estimates) {
				cells = append(cells, formatValue(s.Estimates[i]))
			} else {
				cells = append(cells, "-")
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Final approximations:")
	for _, s := range series {
		if len(s.Estimates) == 0 {
			fmt.Fprintf(w, "%s: no estimate (%s)\n", s.Name, s.Reason)
			continue
		}
		fmt.Fprintf(w, "%s: x ≈ %s (%s)\n",
			s.Name, formatValue(s.Estimates[len(s.Estimates)-1]), s.Reason)
	}
	return nil
}

// CSV writes one row per iteration: the index, then one estimate column
// per series; exhausted columns stay empty. Complex estimates keep the
// a±bi form, which carries no comma and needs no quoting.
func CSV(w io.Writer, series []Series) error {
	header := make([]string, 0, len(series)+1)
	header = append(header, "iter")
	rows := 0
	for _, s := range series {
		header = append(header, s.Name)
		if len(s.Estimates) > rows {
			rows = len(s.Estimates)
		}
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, ",")); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		cells := make([]string, 0, len(series)+1)
		cells = append(cells, fmt.Sprintf("%d", i))
		for _, s := range series {
			if i < len(s.Estimates) {
				cells = append(cells, formatValue(s.Estimates[i]))
			} else {
				cells = append(cells, "")
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders real estimates as plain decimals and keeps the
// a±bi form for genuinely complex ones.
func formatValue(z complex128) string {
	if imag(z) == 0 {
		return fmt.Sprintf("%.6f", real(z))
	}
	return fmt.Sprintf("%.6f%+.6fi", real(z), imag(z))
}
