package smali

import (
	"fmt"
	"sync"

	"github.com/l2obster/smali/pkg/collections"
)

// Document owns a Class that may be edited while other goroutines query it.
// Queries run under View and observe one consistent snapshot of the super
// and implements statements; edits run under Edit.
type Document struct {
	mu    sync.RWMutex
	class *Class
}

// NewDocument wraps the given class.
func NewDocument(class *Class) *Document {
	return &Document{class: class}
}

// View calls fn with the class under the read lock.  fn must not retain the
// class or mutate it.
func (d *Document) View(fn func(c *Class)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(d.class)
}

// Edit calls fn with the class under the write lock.  Any structural edit
// invalidates attached stubs, so they are dropped once fn returns without
// error.
func (d *Document) Edit(fn func(c *Class) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := fn(d.class); err != nil {
		return err
	}
	d.class.DetachStubs()
	return nil
}

// SetSuper replaces the super statement.  An empty descriptor removes it.
func (c *Class) SetSuper(descriptor string) {
	if descriptor == "" {
		c.Super = nil
		return
	}
	c.Super = &SuperStatement{ClassReference: &ClassTypeElement{Descriptor: descriptor}}
}

// InsertImplements inserts an implements statement at index i.
func (c *Class) InsertImplements(i int, descriptor string) error {
	if i < 0 || i > len(c.Implements) {
		return fmt.Errorf("InsertImplements: index %d out of range [0,%d]", i, len(c.Implements))
	}
	stmt := &ImplementsStatement{}
	if descriptor != "" {
		stmt.ClassReference = &ClassTypeElement{Descriptor: descriptor}
	}
	c.Implements = collections.SliceInsertAt(c.Implements, i, stmt)
	return nil
}

// RemoveImplements removes the implements statement at index i.
func (c *Class) RemoveImplements(i int) error {
	if i < 0 || i >= len(c.Implements) {
		return fmt.Errorf("RemoveImplements: index %d out of range [0,%d)", i, len(c.Implements))
	}
	c.Implements = collections.SliceRemoveIndex(c.Implements, i)
	return nil
}
