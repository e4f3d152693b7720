package gstyle

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// hasher feeds style values into an FNV-1a digest.
type hasher struct {
	h   hash.Hash64
	buf [8]byte
}

func newHasher() *hasher { return &hasher{h: fnv.New64a()} }

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.h.Write(h.buf[:]) // fnv.Write never returns an error
}

func (h *hasher) int(v int)         { h.u64(uint64(v)) }
func (h *hasher) str(s string)      { h.int(len(s)); _, _ = io.WriteString(h.h, s) }
func (h *hasher) color(c gg.RGBA)   { h.float(c.R); h.float(c.G); h.float(c.B); h.float(c.A) }
func (h *hasher) outline(o Outline) { h.optInt(o.Top); h.optInt(o.Right); h.optInt(o.Bottom); h.optInt(o.Left) }

// float hashes -0 as 0 so that hashing agrees with ==.
func (h *hasher) float(v float64) {
	if v == 0 {
		v = 0
	}
	h.u64(math.Float64bits(v))
}

func (h *hasher) bool(b bool) {
	if b {
		h.u64(1)
	} else {
		h.u64(0)
	}
}

func (h *hasher) optInt(o Opt[int]) {
	h.bool(o.ok)
	h.int(o.v)
}

func (h *hasher) optColor(o Opt[gg.RGBA]) {
	h.bool(o.ok)
	h.color(o.v)
}

// image hashes only the size; equality is decided by identity.
func (h *hasher) image(img image.Image) {
	if img == nil {
		h.int(-1)
		return
	}
	b := img.Bounds()
	h.int(b.Dx())
	h.int(b.Dy())
}

func (h *hasher) sum() uint64 { return h.h.Sum64() }
