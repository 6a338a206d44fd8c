package interp

// Class is a runtime class value: a name, an optional superclass, and its
// own method table. Calling a Class constructs a new Instance and runs
// init() if defined.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (*Class) Type() string { return "class" }

func (c *Class) String() string { return c.Name }

// FindMethod looks up a method by name, walking the superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if fn, ok := c.Methods[name]; ok {
		return fn
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of init(), or 0 if the class declares none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance, invoking init() with args if the class
// (or an ancestor) defines one.
func (c *Class) Call(interp *Interpreter, args []Value) Value {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		init.Bind(instance).Call(interp, args)
	}
	return instance
}
