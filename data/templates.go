package data

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

var (
	ErrTemplateNotFound = eris.New("entity template not found")
	ErrInvalidTemplate  = eris.New("invalid entity template")
)

//go:embed entities/*.json
var defaultTemplates embed.FS

// EntityTemplate describes the components an entity is built from. An
// entity's resource handle is the ID of its template.
type EntityTemplate struct {
	ID          string   `json:"id"`          // Unique identifier
	Name        string   `json:"name"`        // Display name
	Description string   `json:"description"` // Description text
	Tags        []string `json:"tags"`        // Tags for categorization (e.g. "player", "prop")

	// Components maps a component name to the properties set on it after
	// creation, e.g. {"Transform": {"X": 10, "Y": 20}}
	Components map[string]map[string]any `json:"components"`
}

// ComponentNames returns the template's component names in sorted order
func (t *EntityTemplate) ComponentNames() []string {
	names := make([]string, 0, len(t.Components))
	for name := range t.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTag reports whether the template carries tag
func (t *EntityTemplate) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// ValidateTemplate ensures that the template has all required fields
func ValidateTemplate(template *EntityTemplate) error {
	if template.ID == "" {
		return eris.Wrap(ErrInvalidTemplate, "template missing id")
	}
	if len(template.Components) == 0 {
		return eris.Wrapf(ErrInvalidTemplate, "template %q has no components", template.ID)
	}
	for name := range template.Components {
		if name == "" {
			return eris.Wrapf(ErrInvalidTemplate, "template %q has an unnamed component", template.ID)
		}
	}
	return nil
}

// EntityTemplateManager manages all entity templates
type EntityTemplateManager struct {
	Templates map[string]*EntityTemplate
}

// NewEntityTemplateManager creates a new template manager
func NewEntityTemplateManager() *EntityTemplateManager {
	return &EntityTemplateManager{
		Templates: make(map[string]*EntityTemplate),
	}
}

// LoadDefaultTemplates loads the templates bundled with the binary
func (m *EntityTemplateManager) LoadDefaultTemplates() error {
	return m.LoadTemplatesFromFS(defaultTemplates, "entities")
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory
func (m *EntityTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	return m.LoadTemplatesFromFS(os.DirFS(dirPath), ".")
}

// LoadTemplatesFromFS loads all JSON template files in dir of fsys
func (m *EntityTemplateManager) LoadTemplatesFromFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return eris.Wrap(err, "failed to read template directory")
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return eris.Wrapf(err, "failed to read template %s", entry.Name())
		}
		if err := m.LoadTemplate(raw); err != nil {
			return eris.Wrapf(err, "failed to load template from %s", entry.Name())
		}
	}

	return nil
}

// LoadTemplate parses and adds a single JSON template. A template with the
// same ID replaces the earlier one.
func (m *EntityTemplateManager) LoadTemplate(raw []byte) error {
	var template EntityTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return eris.Wrap(ErrInvalidTemplate, err.Error())
	}
	if err := ValidateTemplate(&template); err != nil {
		return err
	}
	m.Templates[template.ID] = &template
	return nil
}

// GetTemplate returns a template by ID
func (m *EntityTemplateManager) GetTemplate(id string) (*EntityTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// IDs returns the loaded template ids in sorted order
func (m *EntityTemplateManager) IDs() []string {
	ids := make([]string, 0, len(m.Templates))
	for id := range m.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidateResource accepts the ids of loaded templates. It is the world's
// resource handle validator.
func (m *EntityTemplateManager) ValidateResource(handle string) error {
	if _, ok := m.Templates[handle]; !ok {
		return eris.Wrapf(ErrTemplateNotFound, "template %q", handle)
	}
	return nil
}
