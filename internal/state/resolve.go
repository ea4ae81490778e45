package state

import (
	"fmt"
	"strings"
)

// Node exposes one level of the parameter tree. Every branch of the
// tree implements it, so resolution is a chain of Field calls rather
// than reflection.
type Node interface {
	// Field returns the child value for name, or false when no such
	// field exists.
	Field(name string) (any, bool)
	// FieldNames lists the fields of this node in display order.
	FieldNames() []string
}

// PathNotFoundError reports a dotted path that could not be resolved.
// Path is the original full path as given by the caller.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path %q does not exist", e.Path)
}

// Resolve walks path ("segment.segment...") from root, one attribute
// per segment. It fails with PathNotFoundError carrying the full
// original path as soon as any segment is missing; empty paths and
// empty segments fail the same way. Resolution never mutates the tree.
func Resolve(root Node, path string) (any, error) {
	var current any = root
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, &PathNotFoundError{Path: path}
		}
		node, ok := current.(Node)
		if !ok {
			return nil, &PathNotFoundError{Path: path}
		}
		value, ok := node.Field(segment)
		if !ok {
			return nil, &PathNotFoundError{Path: path}
		}
		current = value
	}
	return current, nil
}
