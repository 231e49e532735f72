package objspace

import "sort"

const discriminatorKey = "type"

// Decode walks a generic TOML tree into the typed model. Every table is
// checked against its exact key set; nothing unknown is ignored.
func Decode(tree map[string]any) (ObjectSpaceConfig, error) {
	root := table{m: tree}
	if err := root.expect("camera"); err != nil {
		return ObjectSpaceConfig{}, err
	}
	camera, err := decodeDetectorDescriptor(root.path("camera"), tree["camera"])
	if err != nil {
		return ObjectSpaceConfig{}, err
	}
	return ObjectSpaceConfig{Camera: camera}, nil
}

func decodeDetectorDescriptor(path string, v any) (DetectorDescriptor, error) {
	t, err := asTable(path, v)
	if err != nil {
		return DetectorDescriptor{}, err
	}
	if err := t.expect("detector", "descriptor"); err != nil {
		return DetectorDescriptor{}, err
	}
	detector, err := decodeDetector(t.path("detector"), t.m["detector"])
	if err != nil {
		return DetectorDescriptor{}, err
	}
	descriptor, err := decodeDescriptor(t.path("descriptor"), t.m["descriptor"])
	if err != nil {
		return DetectorDescriptor{}, err
	}
	return DetectorDescriptor{Detector: detector, Descriptor: descriptor}, nil
}

func decodeDetector(path string, v any) (Detector, error) {
	t, err := asTable(path, v)
	if err != nil {
		return nil, err
	}
	tag, err := t.discriminator()
	if err != nil {
		return nil, err
	}

	switch DetectorKind(tag) {
	case KindCheckerboard:
		if err := t.expect(discriminatorKey, "width", "height", "edge_length", "variances"); err != nil {
			return nil, err
		}
		var d Checkerboard
		if d.Width, err = t.integer("width"); err != nil {
			return nil, err
		}
		if d.Height, err = t.integer("height"); err != nil {
			return nil, err
		}
		if d.EdgeLength, err = t.number("edge_length"); err != nil {
			return nil, err
		}
		if d.Variances, err = t.numbers("variances"); err != nil {
			return nil, err
		}
		return d, nil

	case KindCharuco:
		if err := t.expect(discriminatorKey, "width", "height", "edge_length", "marker_length", "variances"); err != nil {
			return nil, err
		}
		var d Charuco
		if d.Width, err = t.integer("width"); err != nil {
			return nil, err
		}
		if d.Height, err = t.integer("height"); err != nil {
			return nil, err
		}
		if d.EdgeLength, err = t.number("edge_length"); err != nil {
			return nil, err
		}
		if d.MarkerLength, err = t.number("marker_length"); err != nil {
			return nil, err
		}
		if d.Variances, err = t.numbers("variances"); err != nil {
			return nil, err
		}
		return d, nil
	}

	return nil, schemaErr(UnknownVariant, t.path(discriminatorKey),
		"%q is not one of %v", tag, DetectorKinds())
}

func decodeDescriptor(path string, v any) (Descriptor, error) {
	t, err := asTable(path, v)
	if err != nil {
		return nil, err
	}
	tag, err := t.discriminator()
	if err != nil {
		return nil, err
	}

	switch DescriptorKind(tag) {
	case KindDetectorDefined:
		if err := t.expect(discriminatorKey); err != nil {
			return nil, err
		}
		return DetectorDefined{}, nil
	}

	return nil, schemaErr(UnknownVariant, t.path(discriminatorKey),
		"%q is not one of %v", tag, DescriptorKinds())
}

// table is a decoded TOML table together with its dotted path in the document.
type table struct {
	prefix string
	m      map[string]any
}

func asTable(path string, v any) (table, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return table{}, mismatch(path, "table", v)
	}
	return table{prefix: path, m: m}, nil
}

func (t table) path(key string) string {
	if t.prefix == "" {
		return key
	}
	return t.prefix + "." + key
}

// expect requires the table's keys to be exactly keys. Missing keys are
// reported before unknown ones, each in a stable order.
func (t table) expect(keys ...string) error {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
		if _, ok := t.m[k]; !ok {
			return schemaErr(MissingField, t.path(k), "")
		}
	}

	var unknown []string
	for k := range t.m {
		if _, ok := allowed[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return schemaErr(UnknownField, t.path(unknown[0]), "expected one of %v", keys)
}

func (t table) discriminator() (string, error) {
	v, ok := t.m[discriminatorKey]
	if !ok {
		return "", schemaErr(MissingDiscriminator, t.path(discriminatorKey), "")
	}
	tag, ok := v.(string)
	if !ok {
		return "", schemaErr(MissingDiscriminator, t.path(discriminatorKey),
			"expected string, found %s", typeName(v))
	}
	return tag, nil
}

func (t table) integer(key string) (int, error) {
	v := t.m[key]
	n, ok := v.(int64)
	if !ok || int64(int(n)) != n {
		return 0, mismatch(t.path(key), "integer", v)
	}
	return int(n), nil
}

func (t table) number(key string) (float64, error) {
	f, ok := toFloat(t.m[key])
	if !ok {
		return 0, mismatch(t.path(key), "float", t.m[key])
	}
	return f, nil
}

func (t table) numbers(key string) ([]float64, error) {
	v := t.m[key]
	items, ok := v.([]any)
	if !ok {
		return nil, mismatch(t.path(key), "array of floats", v)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := toFloat(item)
		if !ok {
			return nil, schemaErr(TypeMismatch, t.path(key),
				"element %d: expected float, found %s", i, typeName(item))
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func mismatch(path, want string, got any) *SchemaError {
	return schemaErr(TypeMismatch, path, "expected %s, found %s", want, typeName(got))
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "float"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	}
	// go-toml's date and time types
	return "datetime"
}
