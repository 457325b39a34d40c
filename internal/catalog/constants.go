package catalog

// ==================== Document ====================

const (
	// CurrentSchemaVersion is the document version this build expects.
	// Bumped whenever the document shape or default content changes;
	// stored documents with an older version are regenerated on load.
	CurrentSchemaVersion = 2

	// DefaultFileName is the catalog file name used when only a
	// directory is configured.
	DefaultFileName = "bounties.json"

	schemaName = "bounties.schema.json"
)

// ==================== Error Messages ====================

const (
	ErrMsgMarshalDefaultsFailed = "failed to marshal default catalog: %w"
	ErrMsgEmptyCatalog          = "catalog contains no usable entries"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded       = "Bounty catalog loaded"
	LogMsgCatalogMissing      = "Catalog file missing, generating defaults"
	LogMsgCatalogInvalid      = "Catalog document invalid, regenerating defaults"
	LogMsgCatalogOutdated     = "Catalog schema version outdated, regenerating defaults"
	LogMsgCatalogWriteFailed  = "Failed to persist regenerated catalog"
	LogMsgEntriesDropped      = "Dropped invalid catalog entries"
	LogMsgDuplicateDropped    = "Dropped catalog entry with duplicate id"
	LogMsgSpawnLevelCorrected = "Raised spawn level on named bounties"
)
