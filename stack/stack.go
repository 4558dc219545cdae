// stack.go holds a simple stack which can hold tokens.
//

package stack

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/skx/sapcalc/token"
)

// initialCapacity and growBy mirror the source's stack allocation: the
// backing array starts with room for 20 tokens and grows by 20 each
// time it fills.
const (
	initialCapacity = 20
	growBy          = 20
)

// Stack holds the stack-data, protected by a mutex
type Stack struct {
	lock sync.Mutex
	s    []*token.Token
}

// New returns a new stack (for holding tokens), used by the evaluator
// as the operator stack of the shunting-yard algorithm.
func New() *Stack {
	return &Stack{s: make([]*token.Token, 0, initialCapacity)}
}

// Push adds a new item to our stack.
func (s *Stack) Push(v *token.Token) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.s) == cap(s.s) {
		grown := make([]*token.Token, len(s.s), cap(s.s)+growBy)
		copy(grown, s.s)
		s.s = grown
	}
	s.s = append(s.s, v)
}

// Pop returns an item from our stack.
func (s *Stack) Pop() (*token.Token, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	l := len(s.s)
	if l == 0 {
		return nil, errors.New("empty stack")
	}

	res := s.s[l-1]
	s.s = s.s[:l-1]
	return res, nil
}

// Top returns the item at the top of the stack without removing it.
func (s *Stack) Top() (*token.Token, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	l := len(s.s)
	if l == 0 {
		return nil, errors.New("empty stack")
	}
	return s.s[l-1], nil
}

// Empty returns `true` if our stack is empty.
func (s *Stack) Empty() bool {

	s.lock.Lock()
	defer s.lock.Unlock()

	l := len(s.s)
	return (l == 0)
}

// Reset empties the stack without releasing its backing array.
func (s *Stack) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.s = s.s[:0]
}
