package render

import "image/color"

// Palette maps binary cell states onto colours.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// Fill converts binary cell data (0/1) into RGBA pixels in buf. buf must
// hold four bytes per cell.
func (p Palette) Fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
