package layout

import "fmt"

// LayoutFormatError reports a malformed template.
type LayoutFormatError struct {
	Template string
	Reason   string
}

func (e *LayoutFormatError) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("layout format: %s", e.Reason)
	}
	return fmt.Sprintf("layout format %q: %s", e.Template, e.Reason)
}

func formatErr(id, format string, args ...any) error {
	return &LayoutFormatError{Template: id, Reason: fmt.Sprintf(format, args...)}
}
