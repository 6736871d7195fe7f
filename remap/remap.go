// Package remap applies the fixed integer coordinate transform that
// accounts for the DMD's diamond-tilted mirror grid, producing a second
// frame buffer from a packed RGBFrame.
package remap

import "github.com/lumenarray/dmd/frame"

// rowAlgorithm and colAlgorithm implement the DMD's diamond mirror tiling,
// ported unchanged from the source's rowAlgorithm/columnAlgorithm.
func rowAlgorithm(i, j int) int { return -j + i/2 }

func colAlgorithm(i, j int) int { return (i+1)/2 + j }

// Remap fills dst from src: for each destination pixel (i, j), the source
// pixel is (originRow + rowAlgorithm(i, j), colAlgorithm(i, j)); if that
// source pixel lies outside src's bounds, dst is left at 0 there. dst must
// be the same size as src; it is cleared before writing.
func Remap(dst, src *frame.RGBFrame, originRow int) {
	dst.Clear()
	for i := 0; i < src.H; i++ {
		for j := 0; j < src.W; j++ {
			x := originRow + rowAlgorithm(i, j)
			y := colAlgorithm(i, j)
			srcOff, ok := src.At(x, y)
			if !ok {
				continue
			}
			dstOff, ok := dst.At(i, j)
			if !ok {
				continue
			}
			dst.Pix[dstOff] = src.Pix[srcOff]
			dst.Pix[dstOff+1] = src.Pix[srcOff+1]
			dst.Pix[dstOff+2] = src.Pix[srcOff+2]
		}
	}
}
