//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"encoding/json"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/dhis2designlab/scp-cli/internal/domain/entities"
)

const (
	defaultVendorKey = "dhis2ComponentSearch"
	defaultKeyword   = "dhis2-component-search"
)

// PackageJSONBuilder helps create package.json documents with a fluent interface.
// By default it builds a conformant react package with one component.
type PackageJSONBuilder struct {
	*testkit.BaseBuilder
	name       string
	version    string
	keywords   any
	vendor     any
	vendorSet  bool
	omitVendor bool
	framework  any
	components any
}

// NewPackageJSONBuilder creates a new package.json builder with sensible defaults.
func NewPackageJSONBuilder() *PackageJSONBuilder {
	b := &PackageJSONBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *PackageJSONBuilder) defaults() {
	b.name = "test-component"
	b.version = "1.0.0"
	b.keywords = []any{defaultKeyword}
	b.vendor = nil
	b.vendorSet = false
	b.omitVendor = false
	b.framework = "react"
	b.components = []any{NewComponent("TestComponent", "Test component", "A component used in tests")}
}

// NewComponent returns one components[] entry with the three required strings.
func NewComponent(export, name, description string) map[string]any {
	return map[string]any{
		"export":      export,
		"name":        name,
		"description": description,
	}
}

// WithKeywords sets the raw keywords value. Pass nil to drop the field.
func (b *PackageJSONBuilder) WithKeywords(keywords any) *PackageJSONBuilder {
	b.keywords = keywords
	return b
}

// WithFramework sets the raw framework value. Pass nil to drop the field.
func (b *PackageJSONBuilder) WithFramework(framework any) *PackageJSONBuilder {
	b.framework = framework
	return b
}

// WithComponents sets the raw components value. Pass nil to drop the field.
func (b *PackageJSONBuilder) WithComponents(components any) *PackageJSONBuilder {
	b.components = components
	return b
}

// WithVendorValue replaces the whole vendor extension value, ignoring framework
// and components.
func (b *PackageJSONBuilder) WithVendorValue(vendor any) *PackageJSONBuilder {
	b.vendor = vendor
	b.vendorSet = true
	return b
}

// WithoutVendor drops the vendor extension key.
func (b *PackageJSONBuilder) WithoutVendor() *PackageJSONBuilder {
	b.omitVendor = true
	return b
}

// Build creates the package.json (satisfies testkit.Builder interface).
func (b *PackageJSONBuilder) Build() interface{} {
	return b.BuildPackageJSON()
}

// BuildPackageJSON creates the package.json with a concrete return type.
func (b *PackageJSONBuilder) BuildPackageJSON() entities.PackageJSON {
	pkg := entities.PackageJSON{
		"name":    b.name,
		"version": b.version,
	}
	if b.keywords != nil {
		pkg["keywords"] = b.keywords
	}

	switch {
	case b.omitVendor:
	case b.vendorSet:
		pkg[defaultVendorKey] = b.vendor
	default:
		vendor := map[string]any{}
		if b.framework != nil {
			vendor["framework"] = b.framework
		}
		if b.components != nil {
			vendor["components"] = b.components
		}
		pkg[defaultVendorKey] = vendor
	}

	return pkg
}

// BuildBytes creates the package.json encoded as JSON.
func (b *PackageJSONBuilder) BuildBytes() []byte {
	data, err := json.Marshal(b.BuildPackageJSON())
	if err != nil {
		panic(err)
	}
	return data
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageJSONBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the PackageJSONBuilder.
func (b *PackageJSONBuilder) Clone() testkit.Builder {
	return &PackageJSONBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		keywords:    b.keywords,
		vendor:      b.vendor,
		vendorSet:   b.vendorSet,
		omitVendor:  b.omitVendor,
		framework:   b.framework,
		components:  b.components,
	}
}
