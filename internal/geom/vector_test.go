package geom

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStorableVectorEncoding(t *testing.T) {
	v := mgl32.Vec3{1.5, -2, 300}
	s := ToStorable(v)

	data, err := MarshalVectors([]StorableVector{s, {}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := UnmarshalVectors(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || back[0].Vec3() != v || back[1] != (StorableVector{}) {
		t.Fatalf("expected %v and zero vector, got %+v", v, back)
	}

	js, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if string(js) != `{"x":1.5,"y":-2,"z":300}` {
		t.Fatalf("unexpected json form %s", js)
	}
}

func TestUnmarshalVectorsRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalVectors([]byte{0xc1}); err == nil {
		t.Fatalf("expected error for invalid msgpack")
	}
}
