package types

import "errors"

var ErrEmptyQueue = errors.New("pop from empty queue")

// Queue is a FIFO queue of linked items. The zero value is an empty queue.
type Queue[T any] struct {
	front *item[T]
	back  *item[T]
	size  int
}

type item[T any] struct {
	value T
	next  *item[T]
}

func NewQueue[T any](values ...T) *Queue[T] {
	q := new(Queue[T])
	for _, v := range values {
		q.Push(v)
	}
	return q
}

func (q *Queue[T]) Push(value T) {
	it := &item[T]{value: value}
	if q.back == nil {
		q.front = it
	} else {
		q.back.next = it
	}
	q.back = it
	q.size++
}

func (q *Queue[T]) Pop() (value T, err error) {
	if q.front == nil {
		return value, ErrEmptyQueue
	}
	it := q.front
	q.front = it.next
	if q.front == nil {
		q.back = nil
	}
	it.next = nil
	q.size--
	return it.value, nil
}

func (q *Queue[T]) len() int {
	return q.size
}

func (q *Queue[T]) empty() bool {
	return q.front == nil
}
