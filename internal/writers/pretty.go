package writers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kmerkit/pkg/api"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
	cardStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// writePrettyKmers renders one bordered card per input: a title, k-mer rows
// with right-aligned counts, and a totals footer.
func writePrettyKmers(w io.Writer, t api.KmerTableV1) error {
	kw, cw := len("kmer"), len("count")
	for _, e := range t.Counts {
		kw = max(kw, len(e.Kmer))
		cw = max(cw, len(strconv.Itoa(e.Count)))
	}
	left := lipgloss.NewStyle().Width(kw)
	right := lipgloss.NewStyle().Width(cw).Align(lipgloss.Right)

	title := fmt.Sprintf("%s  k=%d", t.InputID, t.K)
	if t.Canonical {
		title += " canonical"
	}
	if t.Top > 0 {
		title += fmt.Sprintf(" top=%d", t.Top)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')
	b.WriteString(titleStyle.Render(left.Render("kmer") + "  " + right.Render("count")))
	for _, e := range t.Counts {
		b.WriteByte('\n')
		b.WriteString(left.Render(e.Kmer) + "  " + right.Render(strconv.Itoa(e.Count)))
	}
	b.WriteByte('\n')
	b.WriteString(footerStyle.Render(fmt.Sprintf("distinct=%d total=%d", t.Distinct, t.Total)))

	_, err := fmt.Fprintln(w, cardStyle.Render(b.String()))
	return err
}
