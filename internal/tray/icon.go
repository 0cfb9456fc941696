package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"sync"
)

const iconSize = 32

// Icon returns the PNG used for the tray icon and desktop notifications.
var Icon = sync.OnceValue(generateIcon)

var icoIcon = sync.OnceValue(func() []byte { return encodeICO(Icon(), iconSize) })

// TrayIcon returns the icon in the format the tray host of goos expects: ICO on Windows,
// PNG everywhere else.
func TrayIcon(goos string) []byte {
	if goos == "windows" {
		return icoIcon()
	}
	return Icon()
}

// encodeICO wraps PNG data in a single-image ICO container (PNG payloads are valid since
// Windows Vista).
func encodeICO(pngData []byte, size int) []byte {
	const headerLen = 6 + 16

	dim := byte(size)
	if size >= 256 {
		dim = 0
	}

	out := make([]byte, 0, headerLen+len(pngData))
	// ICONDIR: reserved, type 1 (icon), one image
	out = binary.LittleEndian.AppendUint16(out, 0)
	out = binary.LittleEndian.AppendUint16(out, 1)
	out = binary.LittleEndian.AppendUint16(out, 1)
	// ICONDIRENTRY
	out = append(out, dim, dim, 0, 0)
	out = binary.LittleEndian.AppendUint16(out, 1)  // color planes
	out = binary.LittleEndian.AppendUint16(out, 32) // bits per pixel
	out = binary.LittleEndian.AppendUint32(out, uint32(len(pngData)))
	out = binary.LittleEndian.AppendUint32(out, headerLen)
	return append(out, pngData...)
}

// generateIcon draws the tray icon: a rounded square with two braces.
func generateIcon() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	bg := color.NRGBA{R: 0x2b, G: 0x6c, B: 0xb0, A: 0xff}
	fg := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			if inRoundedRect(x, y, iconSize, 6) {
				img.Set(x, y, bg)
			}
		}
	}

	// "{ }" as two vertical bars with a notch in the middle
	for y := 8; y < 24; y++ {
		img.Set(10, y, fg)
		img.Set(11, y, fg)
		img.Set(20, y, fg)
		img.Set(21, y, fg)
	}
	for _, x := range []int{8, 9, 22, 23} {
		img.Set(x, 15, fg)
		img.Set(x, 16, fg)
	}
	for _, x := range []int{12, 13, 18, 19} {
		img.Set(x, 8, fg)
		img.Set(x, 23, fg)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

func inRoundedRect(x, y, size, r int) bool {
	cx, cy := x, y
	switch {
	case x < r:
		cx = r
	case x >= size-r:
		cx = size - r - 1
	}
	switch {
	case y < r:
		cy = r
	case y >= size-r:
		cy = size - r - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
