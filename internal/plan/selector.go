package plan

// Construction decides how a nested builder is copied and merged.
type Construction struct {
	// PartialMerge is true when the nested builder can merge another
	// builder without building it. Its unset required properties then
	// surface only from the outer Build. Otherwise nested builders are built
	// as soon as they are stored or merged, and a failure becomes the outer
	// builder's error.
	PartialMerge bool
}

// SelectConstruction picks the construction for a NestedBuildable property.
// Other kinds get the zero Construction.
func SelectConstruction(d PropertyDescriptor) Construction {
	if d.Kind != KindNestedBuildable || d.Type.Builder == nil {
		return Construction{}
	}

	return Construction{PartialMerge: d.Type.Builder.PartialMerge}
}
