package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/TDL-133/ai-weekly-fr/internal/formatter"
	"github.com/TDL-133/ai-weekly-fr/pkg/utils"
)

// maxNameWidth bounds the source column so one long name cannot stretch the table.
const maxNameWidth = 32

// Print writes the human-readable report.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "📊 Répartition par source")
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(r.Sources))
	for _, s := range r.Sources {
		mark := "✅"
		if !s.OK {
			mark = "❌"
		}

		rows = append(rows, []string{mark, utils.TruncateString(s.Name, maxNameWidth), strconv.Itoa(s.Count)})
	}

	if len(rows) > 0 {
		fmt.Fprintln(w, formatter.FormatTable([]string{"", "Source", "Articles"}, rows))
	} else {
		fmt.Fprintln(w, "   (aucune source détectée)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "📈 Statistiques")
	fmt.Fprintf(w, "   %s %d\n", utils.PadRight("Total :", 14), r.Stats.Total)
	fmt.Fprintf(w, "   %s %d\n", utils.PadRight("Minimum :", 14), r.Stats.Min)
	fmt.Fprintf(w, "   %s %d\n", utils.PadRight("Maximum :", 14), r.Stats.Max)
	fmt.Fprintf(w, "   %s %d\n", utils.PadRight("Différence :", 14), r.Stats.Difference)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "📂 Répartition par catégorie")
	fmt.Fprintln(w)

	catRows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		mark := "✅"
		count := strconv.Itoa(c.Count)

		switch {
		case !c.Found:
			mark = "⚠️"
			count = "-"
		case !c.InRange:
			mark = "⚠️"
		}

		catRows = append(catRows, []string{mark, c.Label, count, fmt.Sprintf("%d-%d", c.Min, c.Max)})
	}

	fmt.Fprintln(w, formatter.FormatTable([]string{"", "Catégorie", "Articles", "Cible"}, catRows))

	if len(r.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "❌ Erreurs :")

		for _, e := range r.Errors {
			fmt.Fprintf(w, "   - %s\n", e)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "⚠️  Avertissements :")

		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "   - %s\n", warn)
		}
	}

	fmt.Fprintln(w)

	switch {
	case !r.Passed():
		fmt.Fprintln(w, "❌ Validation échouée. Corrigez les erreurs ci-dessus.")
	case len(r.Warnings) > 0:
		fmt.Fprintln(w, "⚠️  Validation réussie avec avertissements. Vérifiez les recommandations ci-dessus.")
	default:
		fmt.Fprintln(w, "✅ Validation réussie ! La newsletter respecte les règles d'équilibre.")
	}
}
