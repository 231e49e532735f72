package objspace

import (
	"encoding/json"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding for Marshal.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTOML, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown format %q (want toml, json or yaml)", name)
}

// Tree returns the wire representation of c: nested maps keyed by the
// lowercase wire names, with tagged unions carrying their "type" key.
func (c ObjectSpaceConfig) Tree() map[string]any {
	camera := map[string]any{}
	if d := detectorTree(c.Camera.Detector); d != nil {
		camera["detector"] = d
	}
	if d := descriptorTree(c.Camera.Descriptor); d != nil {
		camera["descriptor"] = d
	}
	return map[string]any{"camera": camera}
}

func detectorTree(d Detector) map[string]any {
	switch d := d.(type) {
	case Checkerboard:
		return map[string]any{
			discriminatorKey: string(KindCheckerboard),
			"width":          int64(d.Width),
			"height":         int64(d.Height),
			"edge_length":    d.EdgeLength,
			"variances":      append([]float64(nil), d.Variances...),
		}
	case Charuco:
		return map[string]any{
			discriminatorKey: string(KindCharuco),
			"width":          int64(d.Width),
			"height":         int64(d.Height),
			"edge_length":    d.EdgeLength,
			"marker_length":  d.MarkerLength,
			"variances":      append([]float64(nil), d.Variances...),
		}
	}
	return nil
}

func descriptorTree(d Descriptor) map[string]any {
	switch d.(type) {
	case DetectorDefined:
		return map[string]any{discriminatorKey: string(KindDetectorDefined)}
	}
	return nil
}

// Marshal encodes c as TOML that Parse accepts.
func Marshal(c ObjectSpaceConfig) ([]byte, error) {
	return MarshalFormat(c, FormatTOML)
}

// MarshalFormat encodes c in the given format.
func MarshalFormat(c ObjectSpaceConfig, format Format) ([]byte, error) {
	tree := c.Tree()
	switch format {
	case FormatTOML:
		out, err := toml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("marshal toml: %w", err)
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
