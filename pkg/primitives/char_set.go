package primitives

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"
)

// CharSet efficiently represents a set of characters.
type CharSet struct {
	available []bool
	min       rune
	count     int
}

func NewCharSet(min, max rune) *CharSet {
	return &CharSet{
		available: make([]bool, max-min+1),
		min:       min,
		count:     0,
	}
}

// DefaultCharSet is the alphabet letter pools are counted over: 'A' to 'Z'.
func DefaultCharSet() *CharSet {
	return NewCharSet('A', 'Z')
}

// InRange reports whether r can be stored in the set at all.
func (c *CharSet) InRange(r rune) bool {
	return r >= c.min && r <= c.max()
}

func (c *CharSet) max() rune {
	return c.min + rune(len(c.available)-1)
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !c.InRange(r) {
		return errors.Newf("character %c is out of range", r)
	}

	if c.available[r-c.min] {
		return nil
	}

	c.count++
	c.available[r-c.min] = true
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	if c.min != other.min {
		panic(fmt.Sprintf("cannot add all: char sets have different min, %c != %c", c.min, other.min))
	}
	if len(c.available) != len(other.available) {
		panic(fmt.Sprintf("cannot add all: char sets have different lengths, %d != %d", len(c.available), len(other.available)))
	}

	if c.IsFull() {
		return
	}

	if other.IsFull() {
		for i := range c.available {
			c.available[i] = true
		}
		c.count = len(c.available)
		return
	}

	for oi, oa := range other.available {
		if !oa || c.available[oi] {
			continue
		}
		c.available[oi] = true
		c.count++
	}
}

// Contains checks if a character is in the set.
func (c *CharSet) Contains(r rune) bool {
	if !c.InRange(r) {
		return false
	}
	return c.available[r-c.min]
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.count == len(c.available)
}

// Capacity returns the number of characters that can be added to the set.
func (c *CharSet) Capacity() int {
	return len(c.available)
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}

// Runes yields the members of the set in ascending order.
func (c *CharSet) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for i, ok := range c.available {
			if !ok {
				continue
			}
			if !yield(c.min + rune(i)) {
				return
			}
		}
	}
}
