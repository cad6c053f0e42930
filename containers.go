package morse_tree

const (
	containerInitSize     = 16
	containerGrowthFactor = 2
)

// growCap returns the capacity needed to hold required elements,
// multiplying the current capacity by the growth factor until it fits.
func growCap(current, required int) int {
	if current < containerInitSize {
		current = containerInitSize
	}

	for current < required {
		current *= containerGrowthFactor
	}

	return current
}

// Stack is a LIFO container backed by a resizable array.
// Used as scratch space for depth first traversals.
type Stack[T any] struct {
	data []T
	size int
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		data: make([]T, containerInitSize),
	}
}

func (s *Stack[T]) ensureCapacity(required int) {
	if required <= len(s.data) {
		return
	}

	data := make([]T, growCap(len(s.data), required))
	copy(data, s.data[:s.size])
	s.data = data
}

func (s *Stack[T]) Push(value T) {
	s.ensureCapacity(s.size + 1)

	s.data[s.size] = value
	s.size++
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.size == 0 {
		return zero, false
	}

	s.size--
	value := s.data[s.size]
	s.data[s.size] = zero
	return value, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if s.size == 0 {
		var zero T
		return zero, false
	}

	return s.data[s.size-1], true
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *Stack[T]) Size() int {
	return s.size
}

func (s *Stack[T]) Cap() int {
	return len(s.data)
}

// Queue is a FIFO ring buffer backed by a resizable array.
// Used as scratch space for breadth first traversals.
type Queue[T any] struct {
	data []T
	head int
	size int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		data: make([]T, containerInitSize),
	}
}

func (q *Queue[T]) ensureCapacity(required int) {
	if required <= len(q.data) {
		return
	}

	// Unroll the ring so the head lands at index 0
	data := make([]T, growCap(len(q.data), required))
	for i := 0; i < q.size; i++ {
		data[i] = q.data[(q.head+i)%len(q.data)]
	}

	q.data = data
	q.head = 0
}

func (q *Queue[T]) Enqueue(value T) {
	q.ensureCapacity(q.size + 1)

	q.data[(q.head+q.size)%len(q.data)] = value
	q.size++
}

func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}

	value := q.data[q.head]
	q.data[q.head] = zero
	q.head = (q.head + 1) % len(q.data)
	q.size--
	return value, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}

	return q.data[q.head], true
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue[T]) Size() int {
	return q.size
}

func (q *Queue[T]) Cap() int {
	return len(q.data)
}
