package analytics

// CategoryBreakdown sums expense amounts per category. Entries appear in the
// order their category is first met in transactions, and keep the name and
// color seen on that first transaction. Income and uncategorized expenses are
// left out.
func CategoryBreakdown(transactions []Transaction) []CategoryBreakdownEntry {
	entries := []CategoryBreakdownEntry{}
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Type != Expense || t.Category == nil {
			continue
		}
		i, seen := index[t.Category.ID]
		if !seen {
			i = len(entries)
			index[t.Category.ID] = i
			entries = append(entries, CategoryBreakdownEntry{
				Name:  t.Category.Name,
				Color: t.Category.Color,
			})
		}
		entries[i].Value = entries[i].Value.Add(t.Amount)
	}
	return entries
}
