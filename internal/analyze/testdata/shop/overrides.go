package shop

// OrderBuilder is generated; until then this file does not type-check.
func (b *OrderBuilder) AddTags(tag string) *OrderBuilder {
	return b.addTags(tag)
}

func (b *OrderBuilder) ClearTags() *OrderBuilder {
	return b
}
