// Package objspace loads and validates object-space configuration files for
// the camera calibration pipeline.
//
// # Overview
//
// An object-space file tells the calibration pipeline, per component type,
// which calibration target to look for (the detector) and how the
// object-space coordinates of detected features are derived (the
// descriptor). Only cameras are supported.
//
// # TOML Format
//
//	[camera.detector]
//	type = "charuco"            # or "checkerboard"
//	width = 10                  # checker squares horizontally
//	height = 7                  # checker squares vertically
//	edge_length = 0.04          # metres
//	marker_length = 0.03        # metres, charuco only
//	variances = [1e-6, 1e-6, 1e-6]
//
//	[camera.descriptor]
//	type = "detector_defined"
//
// # Loading
//
// Load reads a file and returns the validated configuration. It is ReadSource
// followed by Parse, and Parse is in turn go-toml decoding into a generic tree,
// Decode, and Validate:
//
//	cfg, err := objspace.Load("object_space.toml")
//	if err != nil {
//		return err
//	}
//	switch d := cfg.Camera.Detector.(type) {
//	case objspace.Checkerboard:
//		...
//	case objspace.Charuco:
//		...
//	}
//
// # Strictness
//
// Every table is compared against its exact key set. Unknown keys are errors
// at every level, including the top level; nothing is silently ignored and no
// defaults are substituted. Tagged unions are selected by their "type" key,
// matched case-sensitively against the known tags.
//
// Beyond structure, Validate enforces width > 0, height > 0,
// edge_length > 0, 0 < marker_length < edge_length and exactly three
// non-negative variances. Every float must be finite: TOML can spell nan and
// inf, but they are rejected. These checks are stricter than the file format
// alone requires.
//
// # Error Handling
//
// Each failure stops processing and yields exactly one of:
//
//   - *ResourceError: the file could not be read (wraps the os error)
//   - *SyntaxError: the text is not valid TOML (line and column when known)
//   - *SchemaError: valid TOML that does not match the schema; Kind says
//     which rule failed and Path names the field, e.g.
//     "camera.detector.edge_length"
//
// Use errors.As for the concrete type, or errors.Is with ErrResource,
// ErrSyntax and ErrSchema.
//
// # Encoding
//
// Marshal writes a configuration back out as TOML that Parse accepts and
// that decodes to an equal value. MarshalFormat also emits JSON or YAML for
// tooling.
//
// # Concurrency
//
// The package holds no mutable state. Every call is independent and may run
// concurrently; returned values share nothing with the input text.
package objspace
