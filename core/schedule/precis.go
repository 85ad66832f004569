package schedule

import "strings"

// JoinPrecis merges the precis tab into the registry. Rows are (item name,
// precis) pairs following a header row, which the caller has already
// stripped. Precis whose item name matches no registered item are returned
// so the caller can report them.
func JoinPrecis(reg *Registry, rows [][]string) (missing []string) {
	for _, row := range rows {
		name := cellAt(row, 0)
		precis := cellAt(row, 1)
		if name == "" || precis == "" {
			continue
		}
		if item, ok := reg.Lookup(name); ok {
			item.Precis = precis
		} else {
			missing = append(missing, strings.TrimSpace(name))
		}
	}
	return missing
}
