package entities

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	componentsField   = "components"
	frameworkField    = "framework"
	dhis2VersionField = "dhis2Version"
	keywordsField     = "keywords"
)

var (
	supportedFrameworks     = []string{"react", "angular"}
	requiredComponentFields = []string{"export", "name", "description"}
)

// PackageJSON is a package.json decoded into generic JSON values.
type PackageJSON map[string]any

// ComponentManifestEntry is one UI component declared under the vendor key.
type ComponentManifestEntry struct {
	Export       string
	Name         string
	Description  string
	DHIS2Version []string
}

// SpecifiedComponents maps export names to the components that passed every check.
type SpecifiedComponents map[string]ComponentManifestEntry

// ExportSet holds the names a package exports. A nil set means the package could
// not be introspected and export checks are skipped.
type ExportSet map[string]struct{}

// NewExportSet builds an ExportSet from a list of names.
func NewExportSet(names ...string) ExportSet {
	set := make(ExportSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Has reports whether name is exported.
func (s ExportSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// ComponentReport is the outcome of CheckComponentManifest.
type ComponentReport struct {
	Errors     []VerificationError
	Components SpecifiedComponents
}

// CheckComponentManifest validates the vendor extension of a package.json: the
// framework, the components list and every component entry. It never stops at the
// first bad component; each entry is checked in isolation.
func CheckComponentManifest(pkg PackageJSON, vendorKey string, exports ExportSet) ComponentReport {
	report := ComponentReport{Components: SpecifiedComponents{}}

	rawVendor, ok := pkg[vendorKey]
	if !ok {
		report.Errors = append(report.Errors, NewVerificationError("package.json does not include %s field", vendorKey))
		return report
	}
	vendor, ok := rawVendor.(map[string]any)
	if !ok {
		report.Errors = append(report.Errors, NewVerificationError("package.json/%s must be an object", vendorKey))
		return report
	}

	report.Errors = append(report.Errors, checkFramework(vendor, vendorKey)...)

	components, componentErrs := componentsList(vendor, vendorKey)
	report.Errors = append(report.Errors, componentErrs...)

	for i, item := range components {
		entry, errs := checkComponentEntryIsolated(i, item, exports)
		report.Errors = append(report.Errors, errs...)
		if entry != nil {
			report.Components[entry.Export] = *entry
		}
	}

	return report
}

// CheckKeywords requires the package.json keywords to contain keyword.
func CheckKeywords(pkg PackageJSON, keyword string) []VerificationError {
	rawKeywords, ok := pkg[keywordsField]
	if !ok {
		return []VerificationError{
			NewVerificationError("package.json does not have any keywords, and needs %s", keyword),
		}
	}
	keywords, ok := asStringSlice(rawKeywords)
	if !ok {
		return []VerificationError{NewVerificationError("package.json keywords must be an array of strings")}
	}
	if !slices.Contains(keywords, keyword) {
		return []VerificationError{NewVerificationError("keyword %s is not specified in package.json", keyword)}
	}
	return nil
}

func checkFramework(vendor map[string]any, vendorKey string) []VerificationError {
	rawFramework, ok := vendor[frameworkField]
	if !ok {
		return []VerificationError{
			NewVerificationError("package.json/%s does not include %s", vendorKey, frameworkField),
		}
	}
	framework, ok := rawFramework.(string)
	if !ok {
		return []VerificationError{
			NewVerificationError("package.json/%s includes %s but it is not a string", vendorKey, frameworkField),
		}
	}
	if !slices.Contains(supportedFrameworks, strings.ToLower(framework)) {
		return []VerificationError{NewVerificationError(
			"package.json/%s includes %s %q but it is not \"react\" or \"angular\"",
			vendorKey, frameworkField, framework,
		)}
	}
	return nil
}

func componentsList(vendor map[string]any, vendorKey string) ([]any, []VerificationError) {
	rawComponents, ok := vendor[componentsField]
	if !ok {
		return nil, []VerificationError{
			NewVerificationError("package.json/%s does not include %s field", vendorKey, componentsField),
		}
	}
	components, ok := rawComponents.([]any)
	if !ok {
		return nil, []VerificationError{
			NewVerificationError("package.json/%s includes %s but it is not an array", vendorKey, componentsField),
		}
	}
	if len(components) == 0 {
		return nil, []VerificationError{NewVerificationError(
			"package.json/%s includes %s field, but the list is empty", vendorKey, componentsField,
		)}
	}
	return components, nil
}

func checkComponentEntryIsolated(
	index int,
	item any,
	exports ExportSet,
) (entry *ComponentManifestEntry, errs []VerificationError) {
	defer func() {
		if r := recover(); r != nil {
			entry = nil
			errs = []VerificationError{processingError(index, r)}
		}
	}()
	return checkComponentEntry(index, item, exports)
}

func checkComponentEntry(index int, item any, exports ExportSet) (*ComponentManifestEntry, []VerificationError) {
	fields, ok := item.(map[string]any)
	if !ok {
		return nil, []VerificationError{processingError(index, fmt.Sprintf("expected an object, got %T", item))}
	}

	versions, errs := checkSupportedVersions(fields)
	for _, key := range requiredComponentFields {
		errs = append(errs, checkRequiredString(fields, key)...)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	entry := &ComponentManifestEntry{
		Export:       fields["export"].(string),
		Name:         fields["name"].(string),
		Description:  fields["description"].(string),
		DHIS2Version: versions,
	}

	if exports != nil && !exports.Has(entry.Export) {
		return nil, []VerificationError{NewVerificationError(
			"package.json %s[%d] specified export %q is not exported from the package",
			componentsField, index, entry.Export,
		)}
	}
	return entry, nil
}

func checkRequiredString(fields map[string]any, key string) []VerificationError {
	value, ok := fields[key]
	if !ok {
		return []VerificationError{NewVerificationError("one of the components does not have the %q property", key)}
	}
	text, ok := value.(string)
	if !ok {
		return []VerificationError{NewVerificationError("property %q must be a string", key)}
	}
	if text == "" {
		return []VerificationError{NewVerificationError("property %q is empty", key)}
	}
	return nil
}

// checkSupportedVersions validates the optional dhis2Version list and returns it
// sorted from oldest to newest.
func checkSupportedVersions(fields map[string]any) ([]string, []VerificationError) {
	rawVersions, ok := fields[dhis2VersionField]
	if !ok {
		return nil, nil
	}
	versions, ok := asStringSlice(rawVersions)
	if !ok {
		return nil, []VerificationError{
			NewVerificationError("property %q must be an array of strings", dhis2VersionField),
		}
	}

	var errs []VerificationError
	for _, version := range versions {
		if err := ValidateVersion(version); err != nil {
			errs = append(errs, NewVerificationError("property %q contains an %s", dhis2VersionField, err))
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	canonical := make([]string, len(versions))
	for i, version := range versions {
		canonical[i] = "v" + version
	}
	semver.Sort(canonical)
	for i := range canonical {
		canonical[i] = strings.TrimPrefix(canonical[i], "v")
	}
	return canonical, nil
}

func processingError(index int, cause any) VerificationError {
	return NewVerificationError("problem when processing package.json %s[%d]: %v", componentsField, index, cause)
}

func asStringSlice(value any) ([]string, bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		text, isString := item.(string)
		if !isString {
			return nil, false
		}
		result = append(result, text)
	}
	return result, true
}
