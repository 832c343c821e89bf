package cursive

// Selector describes how to locate a view inside a tree without holding a
// reference to it.
type Selector interface {
	selector()
}

// ByName matches the first view whose declared name equals the string.
// Built-in views declare a name through SetName.
type ByName string

// ByPath descends structurally: each element indexes a child of the current
// composite view (a StackView's layers, a Dialog's content as child 0). An
// exhausted path matches the view it landed on.
type ByPath []int

func (ByName) selector() {}

func (ByPath) selector() {}

// matchLeaf implements Find for views without children: a ByName selector
// matches the declared name, an empty ByPath matches the view itself.
func matchLeaf(v View, name string, sel Selector) View {
	switch s := sel.(type) {
	case ByName:
		if name != "" && string(s) == name {
			return v
		}
	case ByPath:
		if len(s) == 0 {
			return v
		}
	}
	return nil
}
