// Package storage abstracts the object store that product images live in.
package storage

import "io"

// ImageStore persists uploaded product images and returns the public URL a
// stored image is reachable under.
type ImageStore interface {
	Save(filename string, content io.Reader) (string, error)
}
