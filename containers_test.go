package morse_tree

import (
	"testing"
)

func TestStack(t *testing.T) {
	stack := NewStack[int]()
	if stack == nil {
		t.Fatalf("NewStack: returned nil stack")
	}

	if !stack.IsEmpty() {
		t.Fatalf("IsEmpty: stack incorrectly identified as non-empty")
	}

	if _, ok := stack.Peek(); ok {
		t.Fatalf("Peek: expected nothing on empty stack")
	}

	if _, ok := stack.Pop(); ok {
		t.Fatalf("Pop: expected nothing on empty stack")
	}

	if stack.Size() != 0 || stack.Cap() != containerInitSize {
		t.Fatalf("expected size 0 and capacity %d, got %d %d", containerInitSize, stack.Size(), stack.Cap())
	}

	stack.Push(1)
	stack.Push(2)
	if top, ok := stack.Peek(); !ok || top != 2 {
		t.Fatalf("Peek: expected 2, got %d", top)
	}

	if stack.Size() != 2 {
		t.Fatalf("Size: expected 2 got %d", stack.Size())
	}

	if v, ok := stack.Pop(); !ok || v != 2 {
		t.Fatalf("Pop: expected 2, got %d", v)
	}

	if v, ok := stack.Pop(); !ok || v != 1 {
		t.Fatalf("Pop: expected 1, got %d", v)
	}

	if !stack.IsEmpty() {
		t.Fatalf("IsEmpty: stack incorrectly identified as non-empty after pops")
	}
}

func TestStackGrowth(t *testing.T) {
	stack := NewStack[int]()

	count := containerInitSize*containerGrowthFactor + 1
	for i := 0; i < count; i++ {
		stack.Push(i)
	}

	if stack.Cap() != containerInitSize*containerGrowthFactor*containerGrowthFactor {
		t.Fatalf("expected capacity to double twice, got %d", stack.Cap())
	}

	for i := count - 1; i >= 0; i-- {
		v, ok := stack.Pop()
		if !ok || v != i {
			t.Fatalf("Pop: expected %d, got %d", i, v)
		}
	}
}

func TestQueue(t *testing.T) {
	queue := NewQueue[string]()
	if !queue.IsEmpty() {
		t.Fatalf("IsEmpty: queue incorrectly identified as non-empty")
	}

	if _, ok := queue.Dequeue(); ok {
		t.Fatalf("Dequeue: expected nothing on empty queue")
	}

	if _, ok := queue.Peek(); ok {
		t.Fatalf("Peek: expected nothing on empty queue")
	}

	queue.Enqueue("a")
	queue.Enqueue("b")
	if head, ok := queue.Peek(); !ok || head != "a" {
		t.Fatalf("Peek: expected a, got %q", head)
	}

	if v, _ := queue.Dequeue(); v != "a" {
		t.Fatalf("Dequeue: expected a, got %q", v)
	}

	if v, _ := queue.Dequeue(); v != "b" {
		t.Fatalf("Dequeue: expected b, got %q", v)
	}

	if queue.Size() != 0 {
		t.Fatalf("Size: expected 0 got %d", queue.Size())
	}
}

func TestQueueWrapAndGrowth(t *testing.T) {
	queue := NewQueue[int]()

	// Move the head away from index 0 so growing has to unroll the ring
	for i := 0; i < containerInitSize/2; i++ {
		queue.Enqueue(-1)
	}
	for i := 0; i < containerInitSize/2; i++ {
		queue.Dequeue()
	}

	count := containerInitSize*containerGrowthFactor + 3
	for i := 0; i < count; i++ {
		queue.Enqueue(i)
	}

	if queue.Size() != count {
		t.Fatalf("Size: expected %d got %d", count, queue.Size())
	}

	if queue.Cap() < count {
		t.Fatalf("Cap: expected at least %d got %d", count, queue.Cap())
	}

	for i := 0; i < count; i++ {
		v, ok := queue.Dequeue()
		if !ok || v != i {
			t.Fatalf("Dequeue: expected %d, got %d", i, v)
		}
	}

	if !queue.IsEmpty() {
		t.Fatalf("IsEmpty: queue incorrectly identified as non-empty")
	}
}

func TestGrowCap(t *testing.T) {
	tests := []struct {
		current, required, want int
	}{
		{0, 1, containerInitSize},
		{16, 17, 32},
		{16, 33, 64},
		{64, 10, 64},
	}

	for _, tt := range tests {
		if got := growCap(tt.current, tt.required); got != tt.want {
			t.Fatalf("growCap(%d, %d): expected %d got %d", tt.current, tt.required, tt.want, got)
		}
	}
}
