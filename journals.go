package patentsource

// JournalsTable describes the Crossref journal names dump, a comma-delimited
// file with a header line. The table is flat: the whole file is one
// partition.
func JournalsTable() *FlatTable {
	return &FlatTable{
		Name: "journal_names",
		Columns: []FlatColumn{
			{Name: "id"},
			{Name: "title", Field: 0},
			{Name: "publisher", Field: 2},
			{Name: "issn_print", Field: 3},
			{Name: "issn_eprint", Field: 4},
			{Name: "issns_additional", Field: 5},
			{Name: "doi", Field: 6},
			{Name: "volume_info", Field: 7},
		},
	}
}
