package segnet

import (
	"errors"
	"testing"
)

func TestBuffer_Resolve(t *testing.T) {
	data := make([]float32, 8*8*4)

	tests := []struct {
		name          string
		buf           *Buffer
		width, height int
		wantErr       bool
	}{
		{"exact fit", &Buffer{Data: data}, 8, 8, false},
		{"larger than needed", &Buffer{Data: data}, 4, 4, false},
		{"nil buffer", nil, 8, 8, true},
		{"nil data", &Buffer{}, 8, 8, true},
		{"one element short", &Buffer{Data: data[:len(data)-1]}, 8, 8, true},
		{"device memory", &Buffer{Data: data, Kind: MemoryDevice}, 8, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pixels, err := tt.buf.resolve(tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrBufferUnresolved) {
					t.Errorf("expected ErrBufferUnresolved, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			if len(pixels) != len(tt.buf.Data) {
				t.Errorf("resolve returned %d elements, want %d", len(pixels), len(tt.buf.Data))
			}
		})
	}
}

func TestBuffer_ResolveIsBorrowed(t *testing.T) {
	buf := &Buffer{Data: make([]float32, 4*4*4)}
	pixels, err := buf.resolve(4, 4)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// The same backing memory, not a copy
	pixels[0] = 42
	if buf.Data[0] != 42 {
		t.Error("resolve copied the buffer instead of borrowing it")
	}
}

func TestMemory_String(t *testing.T) {
	if MemoryHost.String() != "host" {
		t.Errorf("MemoryHost = %q", MemoryHost.String())
	}
	if MemoryDevice.String() != "device" {
		t.Errorf("MemoryDevice = %q", MemoryDevice.String())
	}
	if Memory(99).String() != "unknown" {
		t.Errorf("Memory(99) = %q", Memory(99).String())
	}
}
