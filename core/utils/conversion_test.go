package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "abc", "abc"},
		{"Bytes", []byte("abc"), "abc"},
		{"WholeFloat", float64(12000), "12000"},
		{"LargeFloat", float64(1500000), "1500000"},
		{"Fraction", 1.5, "1.5"},
		{"Int", 42, "42"},
		{"Int64", int64(42), "42"},
		{"Bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToStrings(t *testing.T) {
	assert.Nil(t, ToStrings(nil))
	assert.Equal(t, []string{"GLB", "FBX"}, ToStrings("GLB, FBX,"))
	assert.Equal(t, []string{"GLB", "OBJ"}, ToStrings([]any{"GLB", "", "OBJ"}))
	assert.Equal(t, []string{"A"}, ToStrings([]string{" A ", " "}))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "model/gltf-binary", ContentType("assets/models/chair/chair.glb"))
	assert.Equal(t, "image/jpeg", ContentType("THUMB.JPG"))
	assert.Equal(t, "application/octet-stream", ContentType("noext"))
}
