package manifest

// DefaultFile is the manifest file name looked for in a project root.
const DefaultFile = "project.toml"

// Manifest represents a project.toml manifest.
type Manifest struct {
	Project Project `toml:"project"`
}

// Project holds the identifying fields of a project.
type Project struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
}

// Field looks up a project field by key. Unknown keys and blank values
// report false so callers can fall through to another source.
func (m *Manifest) Field(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	var v string
	switch key {
	case "name":
		v = m.Project.Name
	case "version":
		v = m.Project.Version
	case "description":
		v = m.Project.Description
	default:
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}
