package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const overlaySchemaURL = "https://mailcue.schemas.local/catalog-overlay.schema.json"

type overlayDoc struct {
	Actions []ActionDefinition `json:"actions" yaml:"actions"`
}

// Load builds the catalog from the builtin table plus any overlay files
// found in dir. An empty dir loads the builtin table alone. All load-time
// invariants are enforced before the catalog is returned; a bad overlay
// fails startup rather than a request.
func Load(dir string) (*Catalog, error) {
	defs := Builtin()
	if strings.TrimSpace(dir) != "" {
		extra, err := loadOverlayDir(dir)
		if err != nil {
			return nil, err
		}
		defs = append(defs, extra...)
	}
	return New(defs)
}

// loadOverlayDir scans dir for *.json and *.yaml overlay files and returns
// their definitions. A missing directory is treated as "no overlays".
// Files are read in lexical order so overlay declaration order, like
// builtin order, is deterministic.
func loadOverlayDir(dir string) ([]ActionDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: read overlay dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isOverlayFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var defs []ActionDefinition
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		doc, err := ParseOverlay(data, strings.HasSuffix(strings.ToLower(name), ".json"))
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		defs = append(defs, doc...)
	}
	return defs, nil
}

// ParseOverlay decodes a single overlay document, validating it against the
// overlay schema first. YAML payloads are normalized to JSON so both formats
// go through the same schema.
func ParseOverlay(data []byte, isJSON bool) ([]ActionDefinition, error) {
	raw := data
	if !isJSON {
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		normalized, err := json.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("normalize yaml: %w", err)
		}
		raw = normalized
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := compiledOverlaySchema().Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var doc overlayDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode overlay: %w", err)
	}
	return doc.Actions, nil
}

func compiledOverlaySchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(overlaySchemaURL, strings.NewReader(overlaySchema)); err != nil {
		panic(fmt.Sprintf("catalog: overlay schema load failed: %v", err))
	}
	compiled, err := c.Compile(overlaySchemaURL)
	if err != nil {
		panic(fmt.Sprintf("catalog: overlay schema compile failed: %v", err))
	}
	return compiled
}

func isOverlayFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".json") ||
		strings.HasSuffix(lower, ".yaml") ||
		strings.HasSuffix(lower, ".yml")
}
