package models

// ParsedDataset is the closed set of dataset generations a parse can
// produce. Callers that accept either generation switch on the concrete
// type or read the declared schema version.
type ParsedDataset interface {
	// SchemaVersion reports the version tag the payload declared.
	SchemaVersion() string

	parsedDataset()
}

func (d *Dataset) SchemaVersion() string { return d.Version }

func (d *Dataset) parsedDataset() {}

func (d *DatasetV2) SchemaVersion() string { return d.Version }

func (d *DatasetV2) parsedDataset() {}
