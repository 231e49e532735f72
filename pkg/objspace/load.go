package objspace

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads the TOML file at path and returns the validated configuration.
// Errors are *ResourceError, *SyntaxError or *SchemaError.
func Load(path string) (ObjectSpaceConfig, error) {
	data, err := ReadSource(path)
	if err != nil {
		return ObjectSpaceConfig{}, err
	}
	return Parse(data)
}

// ReadSource returns the full contents of path.
func ReadSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return data, nil
}

// Parse decodes and validates TOML text.
func Parse(data []byte) (ObjectSpaceConfig, error) {
	tree, err := parseTree(data)
	if err != nil {
		return ObjectSpaceConfig{}, err
	}
	cfg, err := Decode(tree)
	if err != nil {
		return ObjectSpaceConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return ObjectSpaceConfig{}, err
	}
	return cfg, nil
}

func parseTree(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		serr := &SyntaxError{Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			serr.Line, serr.Column = derr.Position()
		}
		return nil, serr
	}
	if tree == nil {
		tree = map[string]any{}
	}
	return tree, nil
}
