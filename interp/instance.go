package interp

import "fmt"

// Instance is a runtime object: a class reference plus its own field
// table. Field lookup falls back to
// bound methods when the field map has no entry, and only there.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (*Instance) Type() string { return "instance" }

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.class.Name)
}

// Get reads a field, falling back to a bound method. The bool is false if
// neither a field nor a method named `name` exists.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if method := i.class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set assigns a field, creating it if absent; Lox instances are open (any
// field name may be assigned at any time).
func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}
