package glue

import "cmp"

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type number interface {
	integer | ~float32 | ~float64
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func Equal[T comparable](a, b ObservableValue[T]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b ObservableValue[T]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y T) bool { return x != y })
}

func Less[T cmp.Ordered](a, b ObservableValue[T]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y T) bool { return x < y })
}

func Greater[T cmp.Ordered](a, b ObservableValue[T]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y T) bool { return x > y })
}

func LessOrEqual[T cmp.Ordered](a, b ObservableValue[T]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y T) bool { return x <= y })
}

func GreaterOrEqual[T cmp.Ordered](a, b ObservableValue[T]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y T) bool { return x >= y })
}

func Min[T cmp.Ordered](a, b ObservableValue[T]) ObservableValue[T] {
	return Combine2(a, b, func(x, y T) T { return min(x, y) })
}

func Max[T cmp.Ordered](a, b ObservableValue[T]) ObservableValue[T] {
	return Combine2(a, b, func(x, y T) T { return max(x, y) })
}

func Not(o ObservableValue[bool]) ObservableValue[bool] {
	return Map(o, func(v bool) bool { return !v })
}

func And(a, b ObservableValue[bool]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y bool) bool { return x && y })
}

func Or(a, b ObservableValue[bool]) ObservableValue[bool] {
	return Combine2(a, b, func(x, y bool) bool { return x || y })
}

func Neg[T signed](o ObservableValue[T]) ObservableValue[T] {
	return Map(o, func(v T) T { return -v })
}

func Add[T number](a, b ObservableValue[T]) ObservableValue[T] {
	return Combine2(a, b, func(x, y T) T { return x + y })
}

func Sub[T number](a, b ObservableValue[T]) ObservableValue[T] {
	return Combine2(a, b, func(x, y T) T { return x - y })
}

func Mul[T number](a, b ObservableValue[T]) ObservableValue[T] {
	return Combine2(a, b, func(x, y T) T { return x * y })
}

// Div panics on integer division by zero, like the operator it wraps.
func Div[T number](a, b ObservableValue[T]) ObservableValue[T] {
	return Combine2(a, b, func(x, y T) T { return x / y })
}

func Mod[T integer](a, b ObservableValue[T]) ObservableValue[T] {
	return Combine2(a, b, func(x, y T) T { return x % y })
}
