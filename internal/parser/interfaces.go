package parser

import "io"

// Parser defines a generic interface for normalising a catalog response body
type Parser[T any] interface {
	Parse(body io.Reader) ([]T, error)
}
