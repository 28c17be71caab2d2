package ledger

// EntryDump is the display form of an entry.
type EntryDump struct {
	Flag       string `json:"flag"`
	Account    string `json:"account"`
	Amount     uint64 `json:"amount"`
	Asset      string `json:"asset"`
	Applicable bool   `json:"applicable"`
}

// Dump is the display form of a collection.
type Dump struct {
	BatchCount int           `json:"batchCount"`
	TotalCount int           `json:"totalCount"`
	Batches    [][]EntryDump `json:"batches"`
}

// Dump returns the display form of the collection.
func (e *Entries) Dump() Dump {
	d := Dump{
		BatchCount: len(e.batches),
		TotalCount: e.count,
		Batches:    make([][]EntryDump, 0, len(e.batches)),
	}
	for _, batch := range e.batches {
		out := make([]EntryDump, 0, len(batch))
		for _, entry := range batch {
			out = append(out, EntryDump{
				Flag:       entry.Flag.Name,
				Account:    entry.Account.String(),
				Amount:     entry.Amount,
				Asset:      entry.Asset.String(),
				Applicable: entry.Applicable,
			})
		}
		d.Batches = append(d.Batches, out)
	}
	return d
}
