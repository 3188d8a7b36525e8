package patentsource

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeArchive creates a zip file under dir holding one XML member whose
// content concatenates the given fragments, each preceded by the document
// boundary marker.
func writeArchive(t *testing.T, dir, name string, fragments []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	writer := zip.NewWriter(file)
	member, err := writer.Create("grants.xml")
	if err != nil {
		t.Fatal(err)
	}
	for _, fragment := range fragments {
		if _, err := io.WriteString(member, DocumentBoundary); err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(member, fragment); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// patentXML produces one patent grant document fragment with the given
// number of IPC classification and citation entries.
func patentXML(filename string, classes, citations int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n<us-patent-grant lang=\"EN\" status=\"PRODUCTION\" country=\"US\" file=%q date-produced=\"20230404\" date-publ=\"20230425\">\n", filename)
	b.WriteString("<us-bibliographic-data-grant>\n")
	b.WriteString(`<application-reference appl-type="utility"/>` + "\n")
	b.WriteString("<invention-title>Adjustable widget</invention-title>\n")
	b.WriteString("<number-of-claims>7</number-of-claims>\n")
	b.WriteString("<examiners><primary-examiner><first-name>Ada</first-name><last-name>Lovelace</last-name></primary-examiner></examiners>\n")
	if classes > 0 {
		b.WriteString("<classifications-ipcr>\n")
		for i := 0; i < classes; i++ {
			fmt.Fprintf(&b, "<classification-ipcr><section>%c</section><class>%02d</class><main-group>%d</main-group></classification-ipcr>\n",
				'A'+rune(i), i+1, i+1)
		}
		b.WriteString("</classifications-ipcr>\n")
	}
	if citations > 0 {
		b.WriteString("<us-references-cited>\n")
		for i := 0; i < citations; i++ {
			fmt.Fprintf(&b, "<us-citation><patcit><document-id><doc-number>%07d</doc-number><country>US</country></document-id></patcit><category>cited by examiner</category></us-citation>\n",
				1000000+i)
		}
		b.WriteString("</us-references-cited>\n")
	}
	b.WriteString("</us-bibliographic-data-grant>\n</us-patent-grant>\n")
	return b.String()
}

// openTestSource builds one archive of patent fragments in a fresh temp
// directory and opens a data source with the USPTO tables over it.
// childCounts gives the number of classification entries per fragment.
func openTestSource(t *testing.T, childCounts []int) *DataSource {
	t.Helper()
	dir := t.TempDir()
	fragments := make([]string, len(childCounts))
	for i, classes := range childCounts {
		fragments[i] = patentXML(fmt.Sprintf("US%07d-20230425.XML", i), classes, 0)
	}
	writeArchive(t, dir, "ipgb20230425.zip", fragments)
	source, err := Open(dir, UsptoTables())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { source.Close() })
	return source
}
