package sdkerr

import "fmt"

// NotImplementedFault is the panic value raised by adapters that have no mapping yet.
// It does not implement Error and is never translated.
type NotImplementedFault struct {
	Adapter string
	Cause   error
}

func (f NotImplementedFault) String() string {
	if f.Cause != nil {
		return fmt.Sprintf("sdkerr: %s adapter not implemented (cause: %v)", f.Adapter, f.Cause)
	}
	return fmt.Sprintf("sdkerr: %s adapter not implemented", f.Adapter)
}

// IsNotImplemented reports whether a recovered panic value is a NotImplementedFault.
func IsNotImplemented(recovered any) bool {
	_, ok := recovered.(NotImplementedFault)
	return ok
}
