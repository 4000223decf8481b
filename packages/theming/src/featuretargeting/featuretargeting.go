// Package featuretargeting gates which categories of styles are emitted
// under a given build query.
package featuretargeting

// Feature identifies one category of emitted styles.
type Feature string

const (
	ColorStyles      Feature = "color"
	StructureStyles  Feature = "structure"
	AnimationStyles  Feature = "animation"
	TypographyStyles Feature = "typography"
)

// Query decides whether a given feature category is included in the output.
type Query interface {
	Emits(feature Feature) bool
}

type allQuery struct{}

func (allQuery) Emits(Feature) bool { return true }

type noneQuery struct{}

func (noneQuery) Emits(Feature) bool { return false }

type setQuery map[Feature]struct{}

func (q setQuery) Emits(feature Feature) bool {
	_, ok := q[feature]
	return ok
}

// All returns a query that emits every feature.
func All() Query { return allQuery{} }

// None returns a query that emits nothing.
func None() Query { return noneQuery{} }

// Only returns a query emitting exactly the given features.
func Only(features ...Feature) Query {
	q := make(setQuery, len(features))
	for _, f := range features {
		q[f] = struct{}{}
	}
	return q
}
