package patentsource

import (
	"log/slog"
)

// DataSource owns the containers discovered in one archive directory, the
// document cache they are parsed through, and the table metadata projected
// over them. A source supports one active cursor chain at a time; concurrent
// scans must each open their own source.
type DataSource struct {
	containers   []Container
	cache        *documentCache
	tables       map[string]*TableMeta
	tableOrder   []string
	logger       *slog.Logger
	archiveReads int
	closed       bool
}

// Option configures a DataSource at open time.
type Option func(*sourceConfig)

type sourceConfig struct {
	sample SamplePredicate
	logger *slog.Logger
}

// WithSample restricts discovery to archive files whose path satisfies the
// predicate. Rejected archives contribute no containers.
func WithSample(sample SamplePredicate) Option {
	return func(c *sourceConfig) {
		c.sample = sample
	}
}

// WithLogger sets the logger used for discovery and iteration diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *sourceConfig) {
		c.logger = logger
	}
}

// Open discovers the containers under dir and prepares cursors for the given
// tables. Tables must be topologically consistent: every ParentName must name
// another table in the slice, and every ForeignKey must name one of its own
// columns.
func Open(dir string, tables []*TableMeta, opts ...Option) (*DataSource, error) {
	cfg := sourceConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	byName := make(map[string]*TableMeta, len(tables))
	order := make([]string, 0, len(tables))
	for _, table := range tables {
		byName[table.Name] = table
		order = append(order, table.Name)
	}
	for _, table := range tables {
		if table.ParentName == "" {
			continue
		}
		if _, ok := byName[table.ParentName]; !ok {
			return nil, ErrParentNotFound(table.Name, table.ParentName)
		}
		if table.Elements == nil {
			return nil, ErrNoElementsExtractor(table.Name)
		}
		if table.ForeignKey != "" && table.ordinalOf(table.ForeignKey) < 0 {
			return nil, ErrForeignKeyNotFound(table.Name, table.ForeignKey)
		}
	}

	containers, reads, err := discoverContainers(dir, cfg.sample)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("discovered containers",
		"dir", dir, "containers", len(containers), "archives", reads)

	return &DataSource{
		containers:   containers,
		cache:        newDocumentCache(),
		tables:       byName,
		tableOrder:   order,
		logger:       cfg.logger,
		archiveReads: reads,
	}, nil
}

// Containers returns the number of discovered containers.
func (s *DataSource) Containers() int {
	return len(s.containers)
}

// ContainerName returns the display name of the container at index.
func (s *DataSource) ContainerName(index int) (string, error) {
	if index < 0 || index >= len(s.containers) {
		return "", ErrContainerOutOfRange(index, len(s.containers))
	}
	return s.containers[index].Name, nil
}

// Tables returns the table names this source serves, in registration order.
func (s *DataSource) Tables() []string {
	names := make([]string, len(s.tableOrder))
	copy(names, s.tableOrder)
	return names
}

// Table returns the metadata of the named table.
func (s *DataSource) Table(name string) (*TableMeta, error) {
	table, ok := s.tables[name]
	if !ok {
		return nil, ErrTableNotFound(name)
	}
	return table, nil
}

// ParseCount reports how many container parses the cache has performed.
func (s *DataSource) ParseCount() int {
	return s.cache.parses()
}

// ArchiveReads reports how many archive members were read during discovery.
func (s *DataSource) ArchiveReads() int {
	return s.archiveReads
}

// Cursor builds the cursor chain for the named table: a root cursor for the
// hierarchy's root, wrapped by one child cursor per nesting level below it.
func (s *DataSource) Cursor(name string) (Cursor, error) {
	return s.buildCursor(name)
}

func (s *DataSource) buildCursor(name string) (entityCursor, error) {
	table, err := s.Table(name)
	if err != nil {
		return nil, err
	}
	if table.ParentName == "" {
		return &rootCursor{
			table:      table,
			containers: &containerCursor{source: s},
		}, nil
	}
	parent, err := s.buildCursor(table.ParentName)
	if err != nil {
		return nil, err
	}
	return &childCursor{
		table:     table,
		parent:    parent,
		fkOrdinal: table.ordinalOf(table.ForeignKey),
	}, nil
}

// Close releases the containers and the cached document. The source must not
// be used afterwards.
func (s *DataSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.containers = nil
	s.cache.release()
	return nil
}
