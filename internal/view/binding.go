package view

import "github.com/iammorganparry/bankdash/internal/dataset"

// Binding keeps the current selection and its panels for a long-lived front
// end, and notifies subscribers after each successful recomputation.
// It is not safe for concurrent use.
type Binding struct {
	ds          *dataset.Dataset
	current     Panels
	subscribers []func(Panels)
}

// NewBinding computes the panels for DefaultCategory.
func NewBinding(ds *dataset.Dataset) (*Binding, error) {
	p, err := Update(ds, DefaultCategory)
	if err != nil {
		return nil, err
	}
	return &Binding{ds: ds, current: p}, nil
}

// Subscribe registers fn to receive the panels after every Select.
func (b *Binding) Subscribe(fn func(Panels)) {
	b.subscribers = append(b.subscribers, fn)
}

// Select recomputes the panels for category. On error the previous panels
// stay current and no subscriber is called.
func (b *Binding) Select(category string) error {
	p, err := Update(b.ds, category)
	if err != nil {
		return err
	}
	b.current = p
	for _, fn := range b.subscribers {
		fn(p)
	}
	return nil
}

// Current returns the most recently computed panels.
func (b *Binding) Current() Panels {
	return b.current
}
