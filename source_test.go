package patentsource

import "testing"

func TestOpenValidatesSchema(t *testing.T) {
	dir := t.TempDir()
	for _, test := range []struct {
		name   string
		tables []*TableMeta
	}{
		{
			"unknown parent",
			[]*TableMeta{{
				Name:       "orphans",
				ParentName: "absent",
				Elements:   Elements("x"),
				Columns:    []ColumnMeta{{Name: "id"}},
			}},
		},
		{
			"missing elements extractor",
			[]*TableMeta{
				{Name: "root", Columns: []ColumnMeta{{Name: "id"}}},
				{
					Name:       "child",
					ParentName: "root",
					Columns:    []ColumnMeta{{Name: "id"}},
				},
			},
		},
		{
			"foreign key not a column",
			[]*TableMeta{
				{Name: "root", Columns: []ColumnMeta{{Name: "id"}}},
				{
					Name:       "child",
					ParentName: "root",
					ForeignKey: "root_name",
					Elements:   Elements("x"),
					Columns:    []ColumnMeta{{Name: "id"}},
				},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Open(dir, test.tables); err == nil {
				t.Error("expected schema validation error")
			}
		})
	}
}

func TestSourceAccessors(t *testing.T) {
	source := openTestSource(t, []int{0, 1})

	if source.Containers() != 2 {
		t.Errorf("Containers() = %d, want 2", source.Containers())
	}
	if source.ArchiveReads() != 1 {
		t.Errorf("ArchiveReads() = %d, want 1", source.ArchiveReads())
	}
	name, err := source.ContainerName(1)
	if err != nil {
		t.Fatal(err)
	}
	if name != "US0000001-20230425.XML" {
		t.Errorf("ContainerName(1) = %q", name)
	}
	if _, err := source.ContainerName(2); err == nil {
		t.Error("expected error for container name out of range")
	}

	tables := source.Tables()
	if len(tables) != 3 || tables[0] != "us_patents" {
		t.Errorf("Tables() = %v", tables)
	}
	if _, err := source.Cursor("absent"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestSourceCloseIsIdempotent(t *testing.T) {
	source := openTestSource(t, []int{0})
	if err := source.Close(); err != nil {
		t.Fatal(err)
	}
	if err := source.Close(); err != nil {
		t.Fatal(err)
	}
}
