package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/go-playground/validator/v10"

	"github.com/ironvale/bountyhall/internal/domain"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/validation"
)

//go:embed bounties.schema.json
var schemaBytes []byte

// Document is the on-disk catalog format: a schema version plus the
// bounty definitions.
type Document struct {
	SchemaVersion int                       `json:"schema_version"`
	Bounties      []domain.BountyDefinition `json:"bounties"`
}

// Loader reads, validates and sanitizes the catalog document. A missing,
// corrupt or outdated document is replaced with regenerated defaults;
// loading never fails startup over bad content.
type Loader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a Loader with the embedded document schema compiled.
func NewLoader() (*Loader, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.RegisterSchema(schemaName, schemaBytes); err != nil {
		return nil, err
	}
	return &Loader{
		schemaValidator: sv,
		validate:        validator.New(),
	}, nil
}

// Load reads the catalog document at path. If the file is missing,
// fails schema validation, fails to parse, or carries an older schema
// version, defaults are regenerated and persisted instead. Individual
// invalid entries are dropped, not fatal.
func (l *Loader) Load(ctx context.Context, path string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	doc, ok := l.readDocument(ctx, path)
	if !ok {
		doc = DefaultDocument()
		l.persist(ctx, path, doc)
	}

	entries := l.sanitize(ctx, doc.Bounties)
	if len(entries) == 0 {
		// Stored document parsed but every entry was unusable. Fall
		// back to defaults rather than running with an empty board.
		log.Warn(LogMsgCatalogInvalid, "path", path, "reason", ErrMsgEmptyCatalog)
		doc = DefaultDocument()
		l.persist(ctx, path, doc)
		entries = l.sanitize(ctx, doc.Bounties)
		if len(entries) == 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogInvalid, ErrMsgEmptyCatalog)
		}
	}

	log.Info(LogMsgCatalogLoaded, "path", path, "entries", len(entries), "schema_version", doc.SchemaVersion)
	return New(entries), nil
}

// readDocument attempts to read and validate the stored document.
// Returns ok=false whenever the document must be regenerated.
func (l *Loader) readDocument(ctx context.Context, path string) (Document, bool) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info(LogMsgCatalogMissing, "path", path)
		} else {
			log.Warn(LogMsgCatalogInvalid, "path", path, "error", err)
		}
		return Document{}, false
	}

	if err := l.schemaValidator.ValidateBytes(data, schemaName); err != nil {
		log.Warn(LogMsgCatalogInvalid, "path", path, "error", err)
		return Document{}, false
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn(LogMsgCatalogInvalid, "path", path, "error", err)
		return Document{}, false
	}

	if doc.SchemaVersion < CurrentSchemaVersion {
		log.Info(LogMsgCatalogOutdated, "path", path,
			"stored_version", doc.SchemaVersion, "current_version", CurrentSchemaVersion)
		return Document{}, false
	}

	return doc, true
}

// sanitize drops entries that fail validation or duplicate an earlier
// id, and raises SpawnLevel to 1 on miniboss/raid entries that lack one.
func (l *Loader) sanitize(ctx context.Context, entries []domain.BountyDefinition) []domain.BountyDefinition {
	log := logger.FromContext(ctx)

	kept := make([]domain.BountyDefinition, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	dropped := 0
	corrected := 0

	for _, e := range entries {
		if err := l.validate.Struct(e); err != nil {
			dropped++
			continue
		}
		if seen[e.ID] {
			dropped++
			log.Warn(LogMsgDuplicateDropped, "id", e.ID)
			continue
		}
		seen[e.ID] = true

		if (e.IsMiniboss() || e.IsRaid()) && e.SpawnLevel < 1 {
			e.SpawnLevel = 1
			corrected++
		}
		kept = append(kept, e)
	}

	if dropped > 0 {
		log.Warn(LogMsgEntriesDropped, "dropped", dropped, "kept", len(kept))
	}
	if corrected > 0 {
		log.Info(LogMsgSpawnLevelCorrected, "corrected", corrected)
	}
	return kept
}

// persist writes the document to path. Failure to write is logged and
// tolerated: the in-memory catalog is still usable this session.
func (l *Loader) persist(ctx context.Context, path string, doc Document) {
	log := logger.FromContext(ctx)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Warn(LogMsgCatalogWriteFailed, "path", path, "error", fmt.Errorf(ErrMsgMarshalDefaultsFailed, err))
		return
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn(LogMsgCatalogWriteFailed, "path", path, "error", err)
			return
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Warn(LogMsgCatalogWriteFailed, "path", path, "error", err)
	}
}
