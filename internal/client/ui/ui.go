package ui

// Container is the display surface for rendered records.
type Container interface {
	// Clear drops everything currently displayed.
	Clear()
	// Append adds one display line at the end.
	Append(line string)
}

// TextField is the user's pending input.
type TextField interface {
	Value() string
	SetValue(v string)
}

// ListContainer is an in-memory Container.
type ListContainer struct {
	lines []string
}

func NewListContainer() *ListContainer {
	return &ListContainer{}
}

func (c *ListContainer) Clear() {
	c.lines = nil
}

func (c *ListContainer) Append(line string) {
	c.lines = append(c.lines, line)
}

// Lines returns a copy of the displayed lines.
func (c *ListContainer) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Field is an in-memory TextField.
type Field struct {
	value string
}

func NewField(initial string) *Field {
	return &Field{value: initial}
}

func (f *Field) Value() string {
	return f.value
}

func (f *Field) SetValue(v string) {
	f.value = v
}
