package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vmihailenco/msgpack/v5"
)

// StorableVector is the persisted form of a world position.
type StorableVector struct {
	X float32 `json:"x" msgpack:"x"`
	Y float32 `json:"y" msgpack:"y"`
	Z float32 `json:"z" msgpack:"z"`
}

func ToStorable(v mgl32.Vec3) StorableVector {
	return StorableVector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func (s StorableVector) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{s.X, s.Y, s.Z}
}

// MarshalVectors encodes positions for the placement save file.
func MarshalVectors(vs []StorableVector) ([]byte, error) {
	data, err := msgpack.Marshal(vs)
	if err != nil {
		return nil, fmt.Errorf("encode vectors: %w", err)
	}
	return data, nil
}

func UnmarshalVectors(data []byte) ([]StorableVector, error) {
	var vs []StorableVector
	if err := msgpack.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("decode vectors: %w", err)
	}
	return vs, nil
}
