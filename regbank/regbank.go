/*
File    : goeval/regbank/regbank.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package regbank implements the evaluator's scratch register bank: a
fixed number of numbered value cells, written with "#n!" and read with
"#n?" within the same expression. Omitting the index ("#!"/"#?") saves
to the register one past the last one written, or recalls the last one
written. Every top-level evaluation clears every register's assigned
flag before parsing, so a value saved in one expression is not visible
to the next one (matching the original evaluator's eval_instance_initialize).
*/
package regbank

// DefaultCapacity is the register bank size used when a session does
// not override it via configuration.
const DefaultCapacity = 64

// Bank is a session's set of scratch registers.
type Bank struct {
	values []float64
	set    []bool
	last   int // index of the last register written, -1 if none
}

// New returns a Bank with the given capacity, all registers unset.
func New(capacity int) *Bank {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bank{values: make([]float64, capacity), set: make([]bool, capacity), last: -1}
}

// Capacity returns the number of addressable registers.
func (b *Bank) Capacity() int { return len(b.values) }

// Reset clears every register's assigned flag and the last-written
// cursor, as happens at the start of every top-level evaluation.
func (b *Bank) Reset() {
	for i := range b.set {
		b.set[i] = false
	}
	b.last = -1
}

// Save stores value into register index. A negative index means
// "implicit": one past the last register written, or register 0 if
// none has been written yet. Save reports an error via ok=false only
// when the resolved index (explicit, or implicit past the last
// register) falls outside the bank's capacity.
func (b *Bank) Save(index int, value float64) (resolved int, ok bool) {
	if index < 0 {
		if b.last < 0 {
			index = 0
		} else {
			index = b.last + 1
		}
	}
	if index < 0 || index >= len(b.values) {
		return index, false
	}
	b.values[index] = value
	b.set[index] = true
	b.last = index
	return index, true
}

// Recall reads register index. A negative index means "implicit": the
// last register written. ok is false if the resolved index is out of
// range or has never been written.
func (b *Bank) Recall(index int) (value float64, resolved int, ok bool) {
	if index < 0 {
		if b.last >= 0 {
			index = b.last
		}
	}
	if index < 0 || index >= len(b.values) || !b.set[index] {
		return 0, index, false
	}
	return b.values[index], index, true
}
