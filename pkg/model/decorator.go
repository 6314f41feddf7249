package model

// Decorator adjusts a comparison model after it has been built, for example
// to rewrite asset references against a CDN host. Spec ids are derived again
// from the labels once all decorators have run, so decorators edit labels and
// values rather than ids.
type Decorator interface {
	Decorate(*ComparisonModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*ComparisonModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *ComparisonModel) error {
	return fn(form)
}
