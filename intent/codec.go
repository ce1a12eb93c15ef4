package intent

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/vector3"
)

const directionScale = 127

// Pack encodes class/direction/magnitude into the fixed 8-byte wire format:
// byte 0 class tag, bytes 1-3 signed int8 direction components (scale 127),
// bytes 4-7 little-endian float32 magnitude.
func Pack(class Class, direction vector3.Vec3, magnitude float64) [WireBytes]byte {
	var out [WireBytes]byte
	out[0] = byte(class)
	out[1] = byte(quantizeComponent(direction.X))
	out[2] = byte(quantizeComponent(direction.Y))
	out[3] = byte(quantizeComponent(direction.Z))
	binary.LittleEndian.PutUint32(out[4:8], math.Float32bits(float32(magnitude)))
	return out
}

// Decode is the exact inverse of Pack.
func Decode(wire []byte) (Class, vector3.Vec3, float64, error) {
	if len(wire) != WireBytes {
		return 0, vector3.Zero, 0, ErrInvalidWireLength
	}
	class := Class(wire[0])
	if int(class) >= len(classNames) {
		return 0, vector3.Zero, 0, fmt.Errorf("intent.Decode: tag=%d: %w", wire[0], ErrInvalidClassTag)
	}
	direction := vector3.Vec3{
		X: dequantizeComponent(int8(wire[1])),
		Y: dequantizeComponent(int8(wire[2])),
		Z: dequantizeComponent(int8(wire[3])),
	}
	magnitude := float64(math.Float32frombits(binary.LittleEndian.Uint32(wire[4:8])))
	return class, direction, magnitude, nil
}

func quantizeComponent(v float64) int8 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int8(math.Round(v * directionScale))
}

func dequantizeComponent(v int8) float64 {
	return float64(v) / directionScale
}
