package flows

// Processor is a user defined function type applied to each element of a Flow stage
type Processor[T any] func(T) (T, error)

// Transformer is a user defined function type converting one element into another
type Transformer[T any, U any] func(T) (U, error)

// Filter is a user defined function type deciding whether an element passes a stage
type Filter[T any] func(T) (bool, error)

// Effect is a user defined function type invoked for its side effect only
type Effect[T any] func(T) error

// Expander is a user defined function type mapping one element to an inner Flow
type Expander[T any, U any] func(T) (Flow[U], error)
