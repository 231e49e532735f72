package objspace

import "fmt"

// DetectorKind is the wire tag selecting a Detector variant.
type DetectorKind string

const (
	KindCheckerboard DetectorKind = "checkerboard"
	KindCharuco      DetectorKind = "charuco"
)

// DescriptorKind is the wire tag selecting a Descriptor variant.
type DescriptorKind string

const (
	KindDetectorDefined DescriptorKind = "detector_defined"
)

// ObjectSpaceConfig is the validated object-space configuration. Only camera
// components are supported.
type ObjectSpaceConfig struct {
	Camera DetectorDescriptor
}

// DetectorDescriptor pairs the detector run on a component's observations with
// the descriptor defining the object space those observations see.
type DetectorDescriptor struct {
	Detector   Detector
	Descriptor Descriptor
}

// Detector is one of Checkerboard or Charuco. The set is closed: the marker
// method is unexported so no other package can add variants.
type Detector interface {
	Kind() DetectorKind
	// Descriptors lists the descriptor kinds this detector may be paired with.
	Descriptors() []DescriptorKind
	isDetector()
}

// Descriptor is one of DetectorDefined.
type Descriptor interface {
	Kind() DescriptorKind
	isDescriptor()
}

// Checkerboard detects a checkerboard in a camera image.
type Checkerboard struct {
	// Checker squares horizontally.
	Width int `toml:"width" validate:"gt=0"`
	// Checker squares vertically.
	Height int `toml:"height" validate:"gt=0"`
	// Edge of one checker square, in metres.
	EdgeLength float64 `toml:"edge_length" validate:"finite,gt=0"`
	// X/Y/Z variances of object-space points, in metres^2.
	Variances []float64 `toml:"variances" validate:"len=3,dive,finite,gte=0"`
}

// Charuco detects a ChArUco board in a camera image.
type Charuco struct {
	Width      int     `toml:"width" validate:"gt=0"`
	Height     int     `toml:"height" validate:"gt=0"`
	EdgeLength float64 `toml:"edge_length" validate:"finite,gt=0"`
	// Edge of one ArUco marker, in metres. Must be smaller than EdgeLength.
	MarkerLength float64   `toml:"marker_length" validate:"finite,gt=0,ltfield=EdgeLength"`
	Variances    []float64 `toml:"variances" validate:"len=3,dive,finite,gte=0"`
}

// DetectorDefined derives object-space coordinates from the detector and its
// parameters.
type DetectorDefined struct{}

func (Checkerboard) Kind() DetectorKind { return KindCheckerboard }
func (Charuco) Kind() DetectorKind      { return KindCharuco }

func (Checkerboard) Descriptors() []DescriptorKind {
	return []DescriptorKind{KindDetectorDefined}
}

func (Charuco) Descriptors() []DescriptorKind {
	return []DescriptorKind{KindDetectorDefined}
}

func (Checkerboard) isDetector() {}
func (Charuco) isDetector()      {}

func (DetectorDefined) Kind() DescriptorKind { return KindDetectorDefined }
func (DetectorDefined) isDescriptor()        {}

var (
	_ Detector   = Checkerboard{}
	_ Detector   = Charuco{}
	_ Descriptor = DetectorDefined{}
)

// DetectorKinds returns every known detector tag in declaration order.
func DetectorKinds() []DetectorKind {
	return []DetectorKind{KindCheckerboard, KindCharuco}
}

// DescriptorKinds returns every known descriptor tag.
func DescriptorKinds() []DescriptorKind {
	return []DescriptorKind{KindDetectorDefined}
}

// Supports reports whether detector d may be paired with descriptor kind k.
func Supports(d Detector, k DescriptorKind) bool {
	if d == nil {
		return false
	}
	for _, allowed := range d.Descriptors() {
		if allowed == k {
			return true
		}
	}
	return false
}

// Summary renders a one-line description of the camera pairing.
func (c ObjectSpaceConfig) Summary() string {
	var det string
	switch d := c.Camera.Detector.(type) {
	case Checkerboard:
		det = fmt.Sprintf("checkerboard %dx%d, edge %g m", d.Width, d.Height, d.EdgeLength)
	case Charuco:
		det = fmt.Sprintf("charuco %dx%d, edge %g m, marker %g m", d.Width, d.Height, d.EdgeLength, d.MarkerLength)
	default:
		det = "no detector"
	}
	desc := "no descriptor"
	if c.Camera.Descriptor != nil {
		desc = string(c.Camera.Descriptor.Kind())
	}
	return fmt.Sprintf("camera: %s; descriptor %s", det, desc)
}
