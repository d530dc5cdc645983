package stream

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Width: 1920, Height: 1080, Channels: 4, Colorspace: 1}
	buf := EncodeHeader(h)
	if len(buf) != HeaderSize {
		t.Fatalf("EncodeHeader produced %d bytes, want %d", len(buf), HeaderSize)
	}
	buf = append(buf, Terminator[:]...) // ParseHeader requires room for a terminator too
	got, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got != h {
		t.Errorf("ParseHeader = %+v, want %+v", got, h)
	}
}

func TestParseHeaderBadMagic(t *testing.T) {
	buf := EncodeHeader(Header{Width: 1, Height: 1, Channels: 3})
	buf[0] = 'x'
	buf = append(buf, Terminator[:]...)
	if _, err := ParseHeader(buf); err != ErrBadMagic {
		t.Errorf("ParseHeader = %v, want ErrBadMagic", err)
	}
}

func TestParseHeaderShortInput(t *testing.T) {
	if _, err := ParseHeader(make([]byte, HeaderSize)); err != ErrShortInput {
		t.Errorf("ParseHeader = %v, want ErrShortInput", err)
	}
}

func TestHeaderValidate(t *testing.T) {
	tests := []struct {
		name string
		h    Header
		ok   bool
	}{
		{"valid rgb", Header{Width: 10, Height: 10, Channels: 3}, true},
		{"valid rgba", Header{Width: 10, Height: 10, Channels: 4, Colorspace: 1}, true},
		{"zero width", Header{Width: 0, Height: 10, Channels: 3}, false},
		{"zero height", Header{Width: 10, Height: 0, Channels: 3}, false},
		{"bad channels", Header{Width: 10, Height: 10, Channels: 2}, false},
		{"bad colorspace", Header{Width: 10, Height: 10, Channels: 3, Colorspace: 2}, false},
		{"over work bound", Header{Width: 1, Height: 400_000_000, Channels: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() err = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
