package entities

import "fmt"

// RelatedKind tags an optional cross-entity reference so the target table is
// known at write time. Existence of the target is not checked and deletes do
// not cascade, so dangling references are possible.
type RelatedKind string

const (
	RelatedCrop      RelatedKind = "crop"
	RelatedLivestock RelatedKind = "livestock"
	RelatedFarm      RelatedKind = "farm"
)

func ValidRelatedKind(kind RelatedKind, allowed ...RelatedKind) bool {
	for _, a := range allowed {
		if kind == a {
			return true
		}
	}
	return false
}

func validateRelated(kind RelatedKind, id string, allowed ...RelatedKind) error {
	if kind == "" && id == "" {
		return nil
	}
	if kind == "" || id == "" {
		return fmt.Errorf("related reference needs both kind and id")
	}
	if !ValidRelatedKind(kind, allowed...) {
		return fmt.Errorf("related kind %q not allowed here", kind)
	}
	return nil
}
