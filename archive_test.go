package patentsource

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscoverContainers(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "a.zip", []string{
		patentXML("US0000001-20230425.XML", 0, 0),
		patentXML("US0000002-20230425.XML", 1, 0),
	})
	writeArchive(t, dir, "b.zip", []string{
		patentXML("US0000003-20230502.XML", 2, 1),
	})

	containers, reads, err := discoverContainers(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if reads != 2 {
		t.Errorf("archive reads = %d, want 2", reads)
	}
	if len(containers) != 3 {
		t.Fatalf("container count = %d, want 3", len(containers))
	}
	wantNames := []string{
		"US0000001-20230425.XML",
		"US0000002-20230425.XML",
		"US0000003-20230502.XML",
	}
	for i, want := range wantNames {
		if containers[i].Name != want {
			t.Errorf("container %d name = %q, want %q", i, containers[i].Name, want)
		}
		if containers[i].Index != i {
			t.Errorf("container %d index = %d", i, containers[i].Index)
		}
	}
}

func TestDiscoverSamplingExcludesArchives(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "keep.zip", []string{patentXML("KEEP-1.XML", 0, 0)})
	writeArchive(t, dir, "skip.zip", []string{patentXML("SKIP-1.XML", 0, 0)})

	sample := func(path string) bool {
		return !strings.Contains(path, "skip")
	}
	containers, reads, err := discoverContainers(dir, sample)
	if err != nil {
		t.Fatal(err)
	}
	if reads != 1 {
		t.Errorf("archive reads = %d, want 1", reads)
	}
	if len(containers) != 1 || containers[0].Name != "KEEP-1.XML" {
		t.Fatalf("containers = %v, want only KEEP-1.XML", containers)
	}
}

func TestDiscoverMissingBoundaryIsOneContainer(t *testing.T) {
	// A member without the boundary marker degenerates to a single
	// container holding the whole content.
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.zip")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	writer := zip.NewWriter(file)
	member, err := writer.Create("grants.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := member.Write([]byte(patentXML("ONLY-1.XML", 0, 0))); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	containers, _, err := discoverContainers(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(containers) != 1 || containers[0].Name != "ONLY-1.XML" {
		t.Fatalf("containers = %v, want single ONLY-1.XML", containers)
	}
}

func TestDiscoverFragmentWithoutNameFails(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "bad.zip", []string{"\n<us-patent-grant lang=\"EN\"></us-patent-grant>\n"})

	_, _, err := discoverContainers(dir, nil)
	if err == nil {
		t.Fatal("expected error for fragment without file attribute")
	}
}

func TestDiscoverXMLMemberCount(t *testing.T) {
	for _, test := range []struct {
		name    string
		members []string
	}{
		{"none", []string{"readme.txt"}},
		{"two", []string{"a.xml", "b.xml"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "bad.zip")
			file, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			writer := zip.NewWriter(file)
			for _, member := range test.members {
				w, err := writer.Create(member)
				if err != nil {
					t.Fatal(err)
				}
				if _, err := w.Write([]byte(DocumentBoundary + patentXML("X-1.XML", 0, 0))); err != nil {
					t.Fatal(err)
				}
			}
			if err := writer.Close(); err != nil {
				t.Fatal(err)
			}
			if err := file.Close(); err != nil {
				t.Fatal(err)
			}

			if _, _, err := discoverContainers(dir, nil); err == nil {
				t.Fatal("expected error for wrong XML member count")
			}
		})
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, _, err := discoverContainers(filepath.Join(t.TempDir(), "absent"), nil)
	if err == nil {
		t.Fatal("expected I/O error for missing directory")
	}
}
