package order

import "printshop/internal/pkg/errs"

// Specification holds what the client ordered: material, dimensions, and
// colors. The state machine treats it as opaque; it only travels with the
// order and shows up in views.
type Specification struct {
	material   string
	dimensions string
	colors     string
}

// NewSpecification creates an order specification. Material is required;
// dimensions and colors are free-form and optional.
func NewSpecification(material, dimensions, colors string) (Specification, error) {
	if material == "" {
		return Specification{}, errs.NewValueIsRequiredError("material")
	}

	return Specification{
		material:   material,
		dimensions: dimensions,
		colors:     colors,
	}, nil
}

// Material returns the print material.
func (s Specification) Material() string {
	return s.material
}

// Dimensions returns the requested dimensions.
func (s Specification) Dimensions() string {
	return s.dimensions
}

// Colors returns the requested colors.
func (s Specification) Colors() string {
	return s.colors
}
