package surface

// SidebarWidthProperty is the root property holding the rendered sidebar width.
const SidebarWidthProperty = "--sidebar-width"

// Document holds root-level layout properties, the terminal counterpart of
// custom properties on a page's root element.
type Document struct {
	props map[string]string
}

// NewDocument creates a document with no properties set.
func NewDocument() *Document {
	return &Document{props: make(map[string]string)}
}

// SetProperty sets a root property.
func (d *Document) SetProperty(name, value string) {
	d.props[name] = value
}

// Property returns a root property and whether it has been set.
func (d *Document) Property(name string) (string, bool) {
	v, ok := d.props[name]
	return v, ok
}
