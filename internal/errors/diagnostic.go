package errors

import "fmt"

// Diagnostic is the sole error type surfaced across package boundaries in
// this tool. It carries a Kind for programmatic dispatch (tests assert on
// Kind; see internal/qdimacs's tests) and a human-readable Message.
type Diagnostic struct {
	Kind    Kind
	Message string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// New builds a Diagnostic with a literal message.
func New(kind Kind, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message}
}

// Newf builds a Diagnostic with a formatted message.
func Newf(kind Kind, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Diagnostic of the given Kind. It does not
// unwrap arbitrary error chains: diagnostics in this tool are never
// wrapped, only returned directly.
func Is(err error, kind Kind) bool {
	d, ok := err.(*Diagnostic)
	return ok && d.Kind == kind
}
