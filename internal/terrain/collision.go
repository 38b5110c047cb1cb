package terrain

import "github.com/vovakirdan/tui-worms/internal/core"

// MaskReader is the read view of a mask the mesh builder samples.
type MaskReader interface {
	Width() int
	Height() int
	Solid(x, y int) bool
}

// Block is one static collision square. X and Y are its center.
type Block struct {
	X, Y float64
	Size int
}

// Bounds returns the block as an integer rectangle.
func (b Block) Bounds() core.Rect {
	half := float64(b.Size) / 2
	return core.NewRect(int(b.X-half), int(b.Y-half), b.Size, b.Size)
}

// MeshBuilder turns a mask into a grid of square blocks. A tile becomes a
// block when more than FillRatio of its in-bounds cells are solid; tiles
// cut off by the right or bottom edge count only the cells they cover.
type MeshBuilder struct {
	BlockSize int
	FillRatio float64
}

// DefaultMeshBuilder returns a 3x3 block builder with a 20% fill threshold.
func DefaultMeshBuilder() MeshBuilder {
	return MeshBuilder{BlockSize: 3, FillRatio: 0.2}
}

// Mesh is an immutable set of collision blocks built from one mask state.
type Mesh struct {
	blockSize int
	cols      int
	rows      int
	occupied  []bool
	blocks    []Block
}

// Rebuild produces the mesh for the current mask. It never fails; an empty
// or nil mask yields an empty mesh.
func (b MeshBuilder) Rebuild(m MaskReader) *Mesh {
	size := max(b.BlockSize, 1)
	mesh := &Mesh{blockSize: size}
	if m == nil || m.Width() <= 0 || m.Height() <= 0 {
		return mesh
	}

	w, h := m.Width(), m.Height()
	mesh.cols = (w + size - 1) / size
	mesh.rows = (h + size - 1) / size
	mesh.occupied = make([]bool, mesh.cols*mesh.rows)

	for ty := 0; ty < mesh.rows; ty++ {
		for tx := 0; tx < mesh.cols; tx++ {
			x0, y0 := tx*size, ty*size
			x1, y1 := min(x0+size, w), min(y0+size, h)
			threshold := float64((x1-x0)*(y1-y0)) * b.FillRatio
			if !tileFilled(m, x0, y0, x1, y1, threshold) {
				continue
			}
			mesh.occupied[ty*mesh.cols+tx] = true
			mesh.blocks = append(mesh.blocks, Block{
				X:    float64(x0) + float64(size)/2,
				Y:    float64(y0) + float64(size)/2,
				Size: size,
			})
		}
	}
	return mesh
}

func tileFilled(m MaskReader, x0, y0, x1, y1 int, threshold float64) bool {
	count := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Solid(x, y) {
				count++
				if float64(count) > threshold {
					return true
				}
			}
		}
	}
	return false
}

// Blocks returns the mesh blocks in row-major tile order. The slice must
// not be modified.
func (m *Mesh) Blocks() []Block { return m.blocks }

// Len returns the number of blocks.
func (m *Mesh) Len() int { return len(m.blocks) }

// BlockSize returns the tile edge in cells.
func (m *Mesh) BlockSize() int { return m.blockSize }

// SolidAt reports whether pixel (x, y) lies inside a block.
func (m *Mesh) SolidAt(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	tx, ty := x/m.blockSize, y/m.blockSize
	if tx >= m.cols || ty >= m.rows {
		return false
	}
	return m.occupied[ty*m.cols+tx]
}

// Collides reports whether the box overlaps any block.
func (m *Mesh) Collides(b core.Box) bool {
	if len(m.blocks) == 0 {
		return false
	}
	left, top, right, bottom := b.PixelBounds()
	if right < 0 || bottom < 0 {
		return false
	}
	tx0 := max(left, 0) / m.blockSize
	ty0 := max(top, 0) / m.blockSize
	tx1 := min(right/m.blockSize, m.cols-1)
	ty1 := min(bottom/m.blockSize, m.rows-1)
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if m.occupied[ty*m.cols+tx] {
				return true
			}
		}
	}
	return false
}

// Equal reports whether both meshes hold the same blocks.
func (m *Mesh) Equal(o *Mesh) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.blocks) != len(o.blocks) {
		return false
	}
	for i := range m.blocks {
		if m.blocks[i] != o.blocks[i] {
			return false
		}
	}
	return true
}
