// SPDX-License-Identifier: MIT

package artifact

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tsvdparity/matrix"
)

// HostBuffer is a Buffer kept in host memory. It stands in for device
// memory when results are produced on the CPU but should be handled like
// device-resident output, and it counts transfers so callers can verify
// that each artifact is copied at most once.
type HostBuffer struct {
	mu        sync.Mutex
	data      []float64
	transfers int
}

var _ Buffer = (*HostBuffer)(nil)

// NewHostBuffer copies data into a new buffer.
func NewHostBuffer(data []float64) *HostBuffer {
	buf := make([]float64, len(data))
	copy(buf, data)
	return &HostBuffer{data: buf}
}

// Len returns the number of values held.
func (b *HostBuffer) Len() int { return len(b.data) }

// CopyToHost copies the whole buffer into dst.
func (b *HostBuffer) CopyToHost(dst []float64) error {
	if len(dst) != len(b.data) {
		return fmt.Errorf("host buffer: dst length %d, want %d", len(dst), len(b.data))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(dst, b.data)
	b.transfers++
	return nil
}

// Transfers returns how many times CopyToHost has succeeded.
func (b *HostBuffer) Transfers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transfers
}

// Upload places d into a HostBuffer in columnar order and describes it as a
// DeviceFrame; rank-1 arrays become series.
func Upload(d *matrix.Dense) (DeviceFrame, *HostBuffer) {
	rows, cols := d.Dims()
	data := d.Data()
	colMajor := make([]float64, 0, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			colMajor = append(colMajor, data[i*cols+j])
		}
	}
	buf := &HostBuffer{data: colMajor}
	if d.Rank() == 1 {
		return NewDeviceSeries(rows, buf), buf
	}
	return DeviceFrame{Rows: rows, Cols: cols, Buffer: buf}, buf
}
