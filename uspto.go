package patentsource

// Table metadata for USPTO patent grant bibliographic (front page) data.
// One container is one us-patent-grant document carved out of a weekly
// archive; the us_patents table has one row per container and the child
// tables project the one-to-many front-page relationships.

const bib = "us-bibliographic-data-grant"

// UsptoTables returns the table hierarchy for patent grant bibliographic
// archives: us_patents at the root, with IPC classification and citation
// child tables.
func UsptoTables() []*TableMeta {
	return []*TableMeta{
		UsPatentsTable(),
		IPCClassificationsTable(),
		CitationsTable(),
	}
}

// UsPatentsTable describes the root table with one row per patent grant.
func UsPatentsTable() *TableMeta {
	return &TableMeta{
		Name: "us_patents",
		Columns: []ColumnMeta{
			{Name: "id"},
			{Name: "container_id"},
			{Name: "language", Description: "Fixed EN for publishing.",
				Extractor: Attr("", "lang")},
			{Name: "status", Description: "Not used for publishing.",
				Extractor: Attr("", "status")},
			{Name: "country", Description: "Fixed US.",
				Extractor: Attr("", "country")},
			{Name: "filename", Description: "Filename for the specific date.",
				Extractor: Attr("", "file")},
			{Name: "date_produced", Extractor: Attr("", "date-produced")},
			{Name: "date_published", Extractor: Attr("", "date-publ")},
			{Name: "type",
				Extractor: Attr(bib+"/application-reference", "appl-type")},
			{Name: "series_code",
				Extractor: Text(bib + "/us-application-series-code")},
			{Name: "invention_title",
				Extractor: Text(bib + "/invention-title")},
			{Name: "botanic_name",
				Extractor: Text(bib + "/us-botanic/latin-name")},
			{Name: "botanic_variety",
				Extractor: Text(bib + "/us-botanic/variety")},
			{Name: "claims_number",
				Extractor: Text(bib + "/number-of-claims")},
			{Name: "figures_number", Description: "Excluded element figures-to-publish.",
				Extractor: Text(bib + "/figures/number-of-figures")},
			{Name: "drawings_number",
				Extractor: Text(bib + "/figures/number-of-drawing-sheets")},
			{Name: "microform_number", Description: "Optical microform appendix.",
				Extractor: Text(bib + "/us-microform-quantity")},
			{Name: "primary_examiner_firstname",
				Extractor: Text(bib + "/examiners/primary-examiner/first-name")},
			{Name: "primary_examiner_lastname",
				Extractor: Text(bib + "/examiners/primary-examiner/last-name")},
			{Name: "assistant_examiner_firstname",
				Extractor: Text(bib + "/examiners/assistant-examiner/first-name")},
			{Name: "assistant_examiner_lastname",
				Extractor: Text(bib + "/examiners/assistant-examiner/last-name")},
			{Name: "authorized_officer_firstname",
				Extractor: Text(bib + "/authorized-officer/first-name")},
			{Name: "authorized_officer_lastname",
				Extractor: Text(bib + "/authorized-officer/last-name")},
			{Name: "hague_filing_date",
				Extractor: Text(bib + "/hague-agreement-data/international-filing-date")},
			{Name: "hague_reg_pub_date",
				Extractor: Text(bib + "/hague-agreement-data/international-registration-publication-date")},
			{Name: "hague_reg_date",
				Extractor: Text(bib + "/hague-agreement-data/international-registration-date")},
			{Name: "hague_reg_num",
				Extractor: Text(bib + "/hague-agreement-data/international-registration-number")},
			{Name: "sir_flag", Description: "Statutory invention registration flag.",
				Extractor: Flag(bib + "/us-sir-flag")},
			{Name: "cpa_flag", Description: "Continued prosecution application flag.",
				Extractor: Flag(bib + "/us-issued-on-continued-prosecution-application")},
			{Name: "rule47_flag", Description: "Refused to execute the application.",
				Extractor: Flag(bib + "/rule-47-flag")},
		},
	}
}

// IPCClassificationsTable describes the IPC classification entries of each
// patent, zero or more per patent.
func IPCClassificationsTable() *TableMeta {
	return &TableMeta{
		Name:       "usp_ipc_classifications",
		ParentName: "us_patents",
		ForeignKey: "patent_filename",
		Elements:   Elements(bib + "/classifications-ipcr/classification-ipcr"),
		Columns: []ColumnMeta{
			{Name: "id"},
			{Name: "container_id"},
			{Name: "patent_filename"},
			{Name: "section", Extractor: Text("section")},
			{Name: "class", Extractor: Text("class")},
			{Name: "subclass", Extractor: Text("subclass")},
			{Name: "main_group", Extractor: Text("main-group")},
			{Name: "subgroup", Extractor: Text("subgroup")},
			{Name: "classification_level",
				Extractor: Text("classification-level")},
			{Name: "classification_value",
				Extractor: Text("classification-value")},
			{Name: "symbol_position", Extractor: Text("symbol-position")},
			{Name: "action_date", Extractor: Text("action-date/date")},
			{Name: "classification_status",
				Extractor: Text("classification-status")},
			{Name: "classification_data_source",
				Extractor: Text("classification-data-source")},
			{Name: "ipc_version",
				Extractor: Text("ipc-version-indicator/date")},
		},
	}
}

// CitationsTable describes the citations listed on each patent's front page.
func CitationsTable() *TableMeta {
	return &TableMeta{
		Name:       "usp_citations",
		ParentName: "us_patents",
		ForeignKey: "patent_filename",
		Elements:   Elements(bib + "/us-references-cited/us-citation"),
		Columns: []ColumnMeta{
			{Name: "id"},
			{Name: "container_id"},
			{Name: "patent_filename"},
			{Name: "cited_doc_number",
				Extractor: Text("patcit/document-id/doc-number")},
			{Name: "cited_country",
				Extractor: Text("patcit/document-id/country")},
			{Name: "cited_kind", Extractor: Text("patcit/document-id/kind")},
			{Name: "cited_name", Extractor: Text("patcit/document-id/name")},
			{Name: "cited_date", Extractor: Text("patcit/document-id/date")},
			{Name: "category", Extractor: Text("category")},
			{Name: "other_citation", Extractor: Text("othercit")},
		},
	}
}
