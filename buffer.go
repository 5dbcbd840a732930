package segnet

import "fmt"

// Memory tags where a buffer's pixels live.
type Memory int

const (
	// MemoryHost is ordinary host memory.
	MemoryHost Memory = iota
	// MemoryDevice is accelerator-resident memory. Device references carry
	// no usable host address and fail resolution.
	MemoryDevice
)

// String returns the tag name.
func (m Memory) String() string {
	switch m {
	case MemoryHost:
		return "host"
	case MemoryDevice:
		return "device"
	default:
		return "unknown"
	}
}

// channels is the number of interleaved components per pixel.
const channels = 4

// Buffer is a borrowed reference to caller-owned image memory.
//
// Data holds interleaved RGBA float32 components with values in 0-255, row
// major, width*height*4 elements for the dimensions passed alongside it.
// SegNet never retains, copies, or frees the slice; it is valid only for the
// duration of a call and its lifetime stays with the caller.
type Buffer struct {
	Data []float32
	Kind Memory
}

// resolve returns the pixel slice for the given dimensions, or a resolution
// error when the reference is unusable. Called before any engine dispatch.
func (b *Buffer) resolve(width, height int) ([]float32, error) {
	if b == nil || b.Data == nil {
		return nil, ErrBufferUnresolved
	}
	if b.Kind != MemoryHost {
		return nil, fmt.Errorf("%w: no host address for %s memory", ErrBufferUnresolved, b.Kind)
	}
	if len(b.Data) < width*height*channels {
		return nil, fmt.Errorf("%w: %d elements, need %d", ErrBufferUnresolved, len(b.Data), width*height*channels)
	}
	return b.Data, nil
}
