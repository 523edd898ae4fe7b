package hwy

import (
	"testing"
)

// everyByte fills a buffer of one lane per 'width' bytes with 0..255 in order.
func everyByte(width int) []byte {
	n := ((256 + width - 1) / width) * width
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}

func TestBiasFlipGreater(t *testing.T) {
	for _, tag := range allTags {
		t.Run(tag.Name(), func(t *testing.T) {
			data := everyByte(tag.Width())
			for threshold := 0; threshold < 256; threshold++ {
				for off := 0; off < len(data); off += tag.Width() {
					got := BiasFlipGreater(tag, Load(tag, data[off:]), uint8(threshold)).Bytes()
					for i, m := range got {
						v := data[off+i]
						want := byte(0)
						if int(v) > threshold {
							want = 0xFF
						}
						if m != want {
							t.Fatalf("BiasFlipGreater(%d, %d) = %#x, want %#x", v, threshold, m, want)
						}
					}
				}
			}
		})
	}
}

func TestBiasFlipGreaterEqual(t *testing.T) {
	for _, tag := range allTags {
		t.Run(tag.Name(), func(t *testing.T) {
			data := everyByte(tag.Width())
			for threshold := 0; threshold < 256; threshold++ {
				for off := 0; off < len(data); off += tag.Width() {
					got := BiasFlipGreaterEqual(tag, Load(tag, data[off:]), uint8(threshold)).Bytes()
					for i, m := range got {
						v := data[off+i]
						want := byte(0)
						if int(v) >= threshold {
							want = 0xFF
						}
						if m != want {
							t.Fatalf("BiasFlipGreaterEqual(%d, %d) = %#x, want %#x", v, threshold, m, want)
						}
					}
				}
			}
		})
	}
}

func TestBiasFlipGreaterEqualZero(t *testing.T) {
	for _, tag := range allTags {
		data := everyByte(tag.Width())
		for off := 0; off < len(data); off += tag.Width() {
			for i, m := range BiasFlipGreaterEqual(tag, Load(tag, data[off:]), 0).Bytes() {
				if m != 0xFF {
					t.Fatalf("%s: BiasFlipGreaterEqual(%d, 0) = %#x, want 0xff", tag.Name(), data[off+i], m)
				}
			}
		}
	}
}

// The raw signed compare is wrong for unsigned data above 127, which is the
// reason the flip exists.
func TestSignedCompareNeedsFlip(t *testing.T) {
	tag := FixedTag128{}
	v := Set(tag, 200)
	if GreaterSigned(v, Set(tag, 100)).Bytes()[0] != 0 {
		t.Fatal("signed compare unexpectedly treats 200 > 100")
	}
	if BiasFlipGreater(tag, v, 100).Bytes()[0] != 0xFF {
		t.Fatal("bias-flip compare should treat 200 > 100")
	}
}
