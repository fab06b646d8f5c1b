package recipe

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/stagekit/errors"
)

// Loader loads recipe definitions by name.
type Loader interface {
	Load(name string) (*Recipe, error)
}

// FileLoader loads recipes from YAML files on disk.
type FileLoader struct {
	dirs []string
}

// NewFileLoader creates a loader that searches the given directories for recipe YAML files.
func NewFileLoader(dirs ...string) *FileLoader {
	return &FileLoader{dirs: dirs}
}

// Load searches for {name}.yaml and {name}.yml in each directory, then one
// level of subdirectories. Names must not contain path separators, ".." or
// glob metacharacters.
func (l *FileLoader) Load(name string) (*Recipe, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	for _, dir := range l.dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return LoadFile(path)
			}

			matches, _ := filepath.Glob(filepath.Join(dir, "*", name+ext))
			if len(matches) > 0 {
				return LoadFile(matches[0])
			}
		}
	}
	return nil, errors.NotFound("recipe", name).WithDetail("dirs", l.dirs)
}

func checkName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.MissingField("recipe")
	case strings.ContainsAny(name, `/\*?[`), strings.Contains(name, ".."):
		return errors.InvalidInput("recipe", fmt.Sprintf("%q is not a plain recipe name", name))
	}
	return nil
}

// LoadFile reads and parses one recipe file.
func LoadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("recipe file", path).WithCause(err)
		}
		return nil, fmt.Errorf("recipe: reading %s: %w", path, err)
	}
	r, err := parse(data, path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Parse decodes a recipe document. Unknown keys are rejected.
func Parse(data []byte) (*Recipe, error) {
	return parse(data, "")
}

func parse(data []byte, source string) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidConfig(source, "empty recipe document")
		}
		return nil, errors.InvalidConfig(source, err.Error()).WithCause(err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Marshal encodes a recipe as YAML.
func Marshal(r *Recipe) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("recipe: encoding %s: %w", r.Name, err)
	}
	return data, nil
}

// MapLoader serves recipes held in memory.
type MapLoader map[string]*Recipe

// Load returns the named recipe.
func (m MapLoader) Load(name string) (*Recipe, error) {
	if r, ok := m[name]; ok {
		return r, nil
	}
	return nil, errors.NotFound("recipe", name)
}
