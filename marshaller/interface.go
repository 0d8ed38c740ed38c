// Package marshaller loads and stores typed documents, such as request
// descriptions and table schemas.
package marshaller

// TypedMarshaller converts values of a single type to and from bytes.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}
