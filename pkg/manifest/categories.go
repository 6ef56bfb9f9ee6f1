// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is the sentinel error wrapped by UnknownCategoryError.
var ErrUnknownCategory = errors.New("unknown category")

// Category is a package category label from the closed set published in the
// typst package repository. Labels are kebab-case and matched exactly.
type Category string

// Functional categories, describing what a package provides.
const (
	// CategoryComponents covers building blocks for documents: boxes,
	// layout elements, marginals, icon packs, color palettes, and more.
	CategoryComponents Category = "components"
	// CategoryVisualization covers packages producing visual
	// representations of data, information, and models.
	CategoryVisualization Category = "visualization"
	// CategoryModel covers tools for managing semantic information and
	// references, such as glossaries and bibliographic tools.
	CategoryModel Category = "model"
	// CategoryLayout covers primitives and helpers for advanced layouts
	// and page setup.
	CategoryLayout Category = "layout"
	// CategoryText covers packages that transform text and strings or are
	// focused on fonts.
	CategoryText Category = "text"
	// CategoryLanguages covers localization, internationalization, and
	// mixed-script documents.
	CategoryLanguages Category = "languages"
	// CategoryScripting covers the programmatic side of typst, useful for
	// automating documents.
	CategoryScripting Category = "scripting"
	// CategoryIntegration covers integrations with third-party tools and
	// formats, including embedded plugins.
	CategoryIntegration Category = "integration"
	// CategoryUtility covers auxiliary packages and tools.
	CategoryUtility Category = "utility"
	// CategoryFun covers unique uses of typst that are not necessarily
	// practical, but always entertaining.
	CategoryFun Category = "fun"
)

// Publication categories, commonly used for template packages.
const (
	// CategoryBook covers long-form fiction and non-fiction books.
	CategoryBook Category = "book"
	// CategoryReport covers multipage informational documents such as tech
	// reports, homework, and proposals.
	CategoryReport Category = "report"
	// CategoryPaper covers scientific treatments of a research question.
	CategoryPaper Category = "paper"
	// CategoryThesis covers final deliverables concluding an academic
	// degree.
	CategoryThesis Category = "thesis"
	// CategoryPoster covers large-scale graphics-heavy presentations of a
	// topic.
	CategoryPoster Category = "poster"
	// CategoryFlyer covers small leaflets intended for circulation.
	CategoryFlyer Category = "flyer"
	// CategoryPresentation covers slides for oral presentations.
	CategoryPresentation Category = "presentation"
	// CategoryCV covers résumés and curricula vitae.
	CategoryCV Category = "cv"
	// CategoryOffice covers day-to-day office staples such as letters and
	// invoices.
	CategoryOffice Category = "office"
)

// AllCategories lists every category, ordered alphabetically by label.
var AllCategories = []Category{
	CategoryBook,
	CategoryComponents,
	CategoryCV,
	CategoryFlyer,
	CategoryFun,
	CategoryIntegration,
	CategoryLanguages,
	CategoryLayout,
	CategoryModel,
	CategoryOffice,
	CategoryPaper,
	CategoryPoster,
	CategoryPresentation,
	CategoryReport,
	CategoryScripting,
	CategoryText,
	CategoryThesis,
	CategoryUtility,
	CategoryVisualization,
}

// FunctionalCategories lists the categories describing the functionality a
// package provides.
var FunctionalCategories = []Category{
	CategoryComponents,
	CategoryFun,
	CategoryIntegration,
	CategoryLanguages,
	CategoryLayout,
	CategoryModel,
	CategoryScripting,
	CategoryText,
	CategoryUtility,
	CategoryVisualization,
}

// PublicationCategories lists the categories related to publication.
var PublicationCategories = []Category{
	CategoryBook,
	CategoryCV,
	CategoryFlyer,
	CategoryOffice,
	CategoryPaper,
	CategoryPoster,
	CategoryPresentation,
	CategoryReport,
	CategoryThesis,
}

var categorySet = func() map[Category]bool {
	set := make(map[Category]bool, len(AllCategories))
	for _, c := range AllCategories {
		set[c] = true
	}
	return set
}()

// UnknownCategoryError is returned when a string is not a known category
// label.
type UnknownCategoryError struct {
	Value string
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Value)
}

// Unwrap returns ErrUnknownCategory so callers can use errors.Is for
// programmatic detection.
func (e *UnknownCategoryError) Unwrap() error { return ErrUnknownCategory }

// ParseCategory matches s against the known category labels.
func ParseCategory(s string) (Category, error) {
	if !categorySet[Category(s)] {
		return "", &UnknownCategoryError{Value: s}
	}
	return Category(s), nil
}

// String returns the kebab-case label.
func (c Category) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown
// labels.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
