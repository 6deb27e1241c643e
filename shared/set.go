package shared

// ISet collects the basic set operations as function pointers, so that
// tests and callers can treat different set backends uniformly.
type ISet[K comparable] struct {
	Insert   func(elem K) bool
	Remove   func(elem K) bool
	Contains func(elem K) bool
	Clear    func()
	Size     func() int
	Each     func(fn func(elem K) bool)
}
