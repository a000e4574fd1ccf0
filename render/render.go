// SPDX-License-Identifier: MIT

// Package render draws a factor as a bordered grid: one column per domain
// variable plus a probability column, one row per joint assignment in
// cartesian-product order.
//
// It is the display collaborator of package factor and only reads factors
// through Domain and Do.
package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/pgm/factor"
)

const (
	// DefaultPrecision formats probabilities with the fewest digits that
	// round-trip (strconv 'g' with precision -1).
	DefaultPrecision = -1

	// DefaultProbabilityHeader titles the value column.
	DefaultProbabilityHeader = "Pr"

	// DefaultRowLines draws a separator between every row.
	DefaultRowLines = true
)

const panicPrecisionInvalid = "render: WithPrecision: digits must be >= 0"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective rendering configuration.
type Options struct {
	precision int
	header    string
	border    lipgloss.Border
	rowLines  bool
}

// WithPrecision fixes the number of significant digits of probabilities.
// Panics when digits is negative.
func WithPrecision(digits int) Option {
	if digits < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithProbabilityHeader replaces the "Pr" column title.
func WithProbabilityHeader(h string) Option {
	return func(o *Options) { o.header = h }
}

// WithBorder selects the lipgloss border set (default lipgloss.NormalBorder).
func WithBorder(b lipgloss.Border) Option {
	return func(o *Options) { o.border = b }
}

// WithRowLines toggles separators between data rows.
func WithRowLines(on bool) Option {
	return func(o *Options) { o.rowLines = on }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		header:    DefaultProbabilityHeader,
		border:    lipgloss.NormalBorder(),
		rowLines:  DefaultRowLines,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	probStyle   = cellStyle.Align(lipgloss.Right)
)

// Table renders f. A nil factor renders as the empty string.
func Table[V, O comparable](f *factor.Factor[V, O], opts ...Option) string {
	if f == nil {
		return ""
	}
	o := gatherOptions(opts...)

	domain := f.Domain()
	headers := make([]string, 0, len(domain)+1)
	for _, v := range domain {
		headers = append(headers, fmt.Sprint(v))
	}
	headers = append(headers, o.header)
	probCol := len(domain)

	rows := make([][]string, 0, f.Size())
	f.Do(func(assignment []O, p float64) bool {
		row := make([]string, 0, len(assignment)+1)
		for _, a := range assignment {
			row = append(row, fmt.Sprint(a))
		}
		row = append(row, strconv.FormatFloat(p, 'g', o.precision, 64))
		rows = append(rows, row)
		return true
	})

	t := table.New().
		Border(o.border).
		BorderRow(o.rowLines).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == probCol:
				return probStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
