package patentsource

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DocumentBoundary separates concatenated XML documents inside an archive's
// single XML member. Splitting on it yields one fragment per document.
const DocumentBoundary = `<?xml version="1.0" encoding="UTF-8"?>`

// namePrefixLength bounds how far into a fragment the display name is sought.
const namePrefixLength = 200

var containerNamePattern = regexp.MustCompile(`file="([^"]+)"`)

// SamplePredicate filters archive files by path at discovery time. Paths for
// which it returns false contribute no containers at all.
type SamplePredicate func(path string) bool

// Container is one addressable unit of source data: a single XML document
// carved out of an archive. Containers are discovered eagerly when a data
// source is opened and are immutable for its lifetime.
type Container struct {
	// Index is the container's ordinal, stable for the life of the source.
	Index int
	// Name is the display name extracted from the fragment's file attribute.
	Name string
	// Archive is the path of the zip file the fragment came from.
	Archive string
	// Data is the raw fragment text.
	Data []byte
}

// discoverContainers scans a directory of zip archives and carves each
// archive's XML member into containers. Archives are visited in name order so
// container ordinals are deterministic. The returned count is the number of
// archive members read and decoded.
func discoverContainers(dir string, sample SamplePredicate) ([]Container, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}
	var containers []Container
	reads := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if sample != nil && !sample(path) {
			continue
		}
		fragments, err := readArchive(path)
		if err != nil {
			return nil, reads, err
		}
		reads++
		for i, fragment := range fragments {
			name, ok := fragmentName(fragment)
			if !ok {
				return nil, reads, ErrContainerName(path, i)
			}
			containers = append(containers, Container{
				Index:   len(containers),
				Name:    name,
				Archive: path,
				Data:    []byte(fragment),
			})
		}
	}
	return containers, reads, nil
}

// readArchive extracts the single XML member of the zip file at path and
// splits its text on the document boundary, dropping empty fragments. A
// member count other than one violates the format contract.
func readArchive(path string) ([]string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, ErrReadArchive(path, err)
	}
	defer archive.Close()

	var member *zip.File
	members := 0
	for _, file := range archive.File {
		if strings.HasSuffix(file.Name, ".xml") {
			member = file
			members++
		}
	}
	if members != 1 {
		return nil, ErrXMLMemberCount(path, members)
	}

	reader, err := member.Open()
	if err != nil {
		return nil, ErrReadArchive(path, err)
	}
	defer reader.Close()
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, ErrReadArchive(path, err)
	}

	var fragments []string
	for _, fragment := range strings.Split(string(content), DocumentBoundary) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

// fragmentName finds the file="..." attribute within the fragment's prefix.
func fragmentName(fragment string) (string, bool) {
	prefix := fragment
	if len(prefix) > namePrefixLength {
		prefix = prefix[:namePrefixLength]
	}
	match := containerNamePattern.FindStringSubmatch(prefix)
	if match == nil {
		return "", false
	}
	return match[1], true
}
