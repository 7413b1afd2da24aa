package view

// FlashKind selects the styling of a one-shot notice. The values double
// as CSS class names in the layout.
type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a notice shown once on the next page view, carried across the
// redirect in a signed cookie.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}
