// Package patentsource exposes bulk patent and bibliographic archives as
// relational tables without materializing the full dataset in memory.
//
// A directory of zip archives, each holding one concatenated XML file of
// patent grant documents, is partitioned at open time into containers: one
// container per embedded XML document. Containers are parsed lazily, one at a
// time, through a single-slot document cache, and their fields are projected
// into rows by a family of pull-based cursors. One-to-many relationships
// inside a document (a patent's classification codes, its citations) surface
// as child tables whose row ids embed the parent's identity.
//
// The cursor protocol is the module's boundary: an embedding query engine
// positions a cursor, optionally pinning a single container, and pulls rows
// until exhaustion. The grantstore subpackage drives these cursors to
// populate an on-disk store.
package patentsource
