package utils

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"math"
	"os"
)

// LoadImageFile decodes a PNG or JPEG image from disk.
//
// Returns:
//   - The decoded image (any image.Image implementation)
//   - An error if the file cannot be opened or the format is not supported
//
// Example:
//
//	img, err := utils.LoadImageFile("korolev.jpg")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image %s (%s) has empty bounds", path, format)
	}
	return img, nil
}

// GenerateDemoPortrait 生成一张非正方形的演示"照片"
//
// 背景为从上到下的蓝紫渐变，中间是肤色的头部和深色的肩部轮廓。
// 演示程序在没有提供 --image 时使用，避免依赖外部图片文件。
func GenerateDemoPortrait(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	headX := float64(width) / 2
	headY := float64(height) * 0.42
	headR := float64(min(width, height)) * 0.22
	shoulderY := float64(height) * 0.95
	shoulderR := float64(min(width, height)) * 0.45

	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		bg := color.RGBA{
			R: uint8(Lerp(70, 140, t)),
			G: uint8(Lerp(110, 80, t)),
			B: uint8(Lerp(190, 160, t)),
			A: 0xFF,
		}
		for x := 0; x < width; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			switch {
			case math.Hypot(px-headX, py-headY) < headR:
				img.SetRGBA(x, y, color.RGBA{R: 236, G: 196, B: 164, A: 0xFF})
			case math.Hypot(px-headX, py-shoulderY) < shoulderR:
				img.SetRGBA(x, y, color.RGBA{R: 45, G: 52, B: 64, A: 0xFF})
			default:
				img.SetRGBA(x, y, bg)
			}
		}
	}
	return img
}
