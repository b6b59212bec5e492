package softpaint

import (
	"errors"
	"testing"
)

func TestMeshValidate(t *testing.T) {
	quad := quadMesh(ManagedTexture(0), RectFromSize(1, 1), White32)
	if err := quad.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if len(quad.Vertices) != 4 || len(quad.Indices) != 6 {
		t.Errorf("AddRectWithUV produced %d vertices and %d indices, want 4 and 6",
			len(quad.Vertices), len(quad.Indices))
	}

	tests := []struct {
		name    string
		indices []uint32
	}{
		{"partial triangle", []uint32{0, 1}},
		{"index out of range", []uint32{0, 1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := *quad
			m.Indices = tt.indices
			if err := m.Validate(); !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("Validate() = %v, want ErrInvalidMesh", err)
			}
		})
	}
}

func TestTexturesDeltaAppend(t *testing.T) {
	var d TexturesDelta
	if !d.IsEmpty() {
		t.Error("zero TexturesDelta should be empty")
	}
	d.Append(TexturesDelta{
		Set:  []TextureSet{{ID: ManagedTexture(0), Delta: FullDelta(checker(1, 1), DefaultTextureOptions)}},
		Free: []TextureID{UserTexture(2)},
	})
	d.Append(TexturesDelta{Free: []TextureID{ManagedTexture(3)}})
	if len(d.Set) != 1 || len(d.Free) != 2 || d.Free[1] != ManagedTexture(3) {
		t.Errorf("Append produced %+v", d)
	}
	d.Clear()
	if !d.IsEmpty() {
		t.Error("Clear() left entries behind")
	}
}

func TestTextureIDString(t *testing.T) {
	if got := ManagedTexture(0).String(); got != "managed#0" {
		t.Errorf("ManagedTexture(0).String() = %q, want %q", got, "managed#0")
	}
	if got := UserTexture(7).String(); got != "user#7" {
		t.Errorf("UserTexture(7).String() = %q, want %q", got, "user#7")
	}
}
