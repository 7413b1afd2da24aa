package quantity

// EmitFunc receives the single outbound event of a submit action.
type EmitFunc func(productID string, qty int)

// Mediator translates a widget's submit buttons into one (productID, qty)
// event. It does not know whether the receiver accumulates or overwrites;
// that is decided by whichever cart operation the page wires to emit.
type Mediator struct {
	productID string
	editor    *Editor
	emit      EmitFunc
}

func NewMediator(productID string, editor *Editor, emit EmitFunc) *Mediator {
	return &Mediator{productID: productID, editor: editor, emit: emit}
}

// SubmitAdd emits the normalized quantity from the editor.
func (m *Mediator) SubmitAdd() {
	m.emit(m.productID, m.editor.Submit())
}

// SubmitRemove emits quantity 0 regardless of what is typed in the field.
// Remove always means 0.
func (m *Mediator) SubmitRemove() {
	m.emit(m.productID, 0)
}
