package shebang

import "fmt"

// InvalidShebangError reports an env shebang with no interpretable
// program name, such as "-S" with nothing after it or a bare env.
type InvalidShebangError struct {
	Line string
}

func (e *InvalidShebangError) Error() string {
	return fmt.Sprintf("invalid env usage in shebang: %s", e.Line)
}

// UnsupportedShebangError reports an env flag form other than -S, or an
// =-bearing token, that this tool declines to interpret rather than guess.
type UnsupportedShebangError struct {
	Line string
}

func (e *UnsupportedShebangError) Error() string {
	return fmt.Sprintf("unsupported env usage in shebang: %s", e.Line)
}
