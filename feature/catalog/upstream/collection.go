package upstream

// Collection names one paginated upstream resource.
type Collection string

const (
	Categories Collection = "categories"
	Items      Collection = "items"
	Variants   Collection = "variants"
	Inventory  Collection = "inventory"
)

// Path returns the URL path segment of the collection.
func (c Collection) Path() string {
	return string(c)
}

// Field returns the response body field holding the page records.
func (c Collection) Field() string {
	if c == Inventory {
		return "inventory_levels"
	}
	return string(c)
}

// SupportsSince reports whether the collection accepts an updated-since filter.
func (c Collection) SupportsSince() bool {
	return c == Items || c == Variants
}
