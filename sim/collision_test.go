package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextEvent_SingleWinner(t *testing.T) {
	value, contenders := NextEvent([]int64{7, 3, 12, 9})
	assert.Equal(t, int64(3), value)
	assert.Equal(t, []int{1}, contenders)
}

func TestNextEvent_TieIsCollision(t *testing.T) {
	value, contenders := NextEvent([]int64{5, 2, 2, 8})
	assert.Equal(t, int64(2), value)
	assert.Equal(t, []int{1, 2}, contenders)
}

func TestNextEvent_AllTied(t *testing.T) {
	value, contenders := NextEvent([]int64{4, 4, 4})
	assert.Equal(t, int64(4), value)
	assert.Equal(t, []int{0, 1, 2}, contenders)
}

func TestNextEvent_SingleNode(t *testing.T) {
	value, contenders := NextEvent([]int64{11})
	assert.Equal(t, int64(11), value)
	assert.Equal(t, []int{0}, contenders)
}

func TestNextEvent_MinimumAtZero(t *testing.T) {
	value, contenders := NextEvent([]int64{0, 6, 0})
	assert.Equal(t, int64(0), value)
	assert.Equal(t, []int{0, 2}, contenders)
}
