// Package export renders road networks and comparison reports for people
// and for other tools.
//
//   - DOT draws a core.Graph in Graphviz, optionally overlaying one
//     search.Result: explored nodes, the path, its source and target.
//   - WriteCSV emits one row per engine of a compare.Report.
//   - WriteJSON encodes the whole report. Costs of failed searches are null.
//   - WriteTable prints an aligned console table.
//
// Example usage:
//
//	rs, _ := compare.Run(g, 0, 99)
//	rep := compare.NewReport(g, 0, 99, rs)
//	_ = export.WriteTable(os.Stdout, rep)
//	dot, _ := export.DOT(g, rs["astar"], export.WithPositions())
package export
