/*
File    : goeval/regbank/regbank_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package regbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBank_SaveAndRecallExplicitIndex(t *testing.T) {
	b := New(8)
	resolved, ok := b.Save(3, 42)
	assert.True(t, ok)
	assert.Equal(t, 3, resolved)

	v, resolved, ok := b.Recall(3)
	assert.True(t, ok)
	assert.Equal(t, 3, resolved)
	assert.Equal(t, 42.0, v)
}

func TestBank_RecallUnassignedFails(t *testing.T) {
	b := New(8)
	_, _, ok := b.Recall(2)
	assert.False(t, ok)
}

func TestBank_RecallOutOfRangeFails(t *testing.T) {
	b := New(4)
	_, _, ok := b.Recall(10)
	assert.False(t, ok)
}

func TestBank_SaveOutOfRangeFails(t *testing.T) {
	b := New(4)
	_, ok := b.Save(10, 1)
	assert.False(t, ok)
}

func TestBank_ImplicitSaveStartsAtZero(t *testing.T) {
	b := New(8)
	resolved, ok := b.Save(-1, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, resolved)
}

func TestBank_ImplicitSaveAdvancesPastLast(t *testing.T) {
	b := New(8)
	b.Save(-1, 1) // -> 0
	resolved, ok := b.Save(-1, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, resolved)
}

func TestBank_ImplicitRecallReadsLastWritten(t *testing.T) {
	b := New(8)
	b.Save(5, 99)
	v, resolved, ok := b.Recall(-1)
	assert.True(t, ok)
	assert.Equal(t, 5, resolved)
	assert.Equal(t, 99.0, v)
}

func TestBank_ImplicitRecallWithNothingWrittenFails(t *testing.T) {
	b := New(8)
	_, _, ok := b.Recall(-1)
	assert.False(t, ok)
}

func TestBank_ResetClearsAssignedFlagsButNotValues(t *testing.T) {
	b := New(8)
	b.Save(0, 7)
	b.Reset()

	_, _, ok := b.Recall(0)
	assert.False(t, ok, "reset should clear the assigned flag")

	resolved, ok := b.Save(-1, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, resolved, "implicit save should restart at 0 after reset")
}

func TestBank_DefaultCapacityUsedForZeroOrNegative(t *testing.T) {
	b := New(0)
	assert.Equal(t, DefaultCapacity, b.Capacity())

	b2 := New(-5)
	assert.Equal(t, DefaultCapacity, b2.Capacity())
}
