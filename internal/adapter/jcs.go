package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JCS defines an interface for JSON canonicalization to enable mocking
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	// Transform canonicalizes raw JSON per RFC 8785
	Transform(data []byte) ([]byte, error)
	// Marshal encodes v as canonical JSON
	Marshal(v any) ([]byte, error)
}

// RealJCS implements JCS using the jcs package
type RealJCS struct{}

// NewJCS creates a new real JCS implementation
func NewJCS() JCS {
	return &RealJCS{}
}

func (j *RealJCS) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

func (j *RealJCS) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}
	return jcs.Transform(data)
}
