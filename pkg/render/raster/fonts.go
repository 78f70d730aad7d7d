package raster

import (
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontCache 按字号缓存 opentype 字体 face
//
// 默认使用内置的 Go Regular 无衬线字体，不依赖系统字体。
// 非线程安全：所有绘制都在同一个线程中进行。
type FontCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

var defaultFontCache *FontCache

// DefaultFontCache 返回使用 Go Regular 字体的共享缓存
func DefaultFontCache() *FontCache {
	if defaultFontCache == nil {
		cache, err := NewFontCache(goregular.TTF)
		if err != nil {
			// 内置字体解析失败属于构建问题
			panic(err)
		}
		defaultFontCache = cache
	}
	return defaultFontCache
}

// NewFontCache 从 TTF/OTF 字体数据创建缓存
func NewFontCache(fontData []byte) (*FontCache, error) {
	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return &FontCache{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face 返回指定像素字号的 face，字号非正时返回 nil
func (c *FontCache) Face(size float64) font.Face {
	if size <= 0 {
		return nil
	}
	// 量化到 1/4 像素，避免动画中字号抖动时缓存无限增长
	size = math.Round(size*4) / 4

	if face, ok := c.faces[size]; ok {
		return face
	}

	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Printf("[raster] Warning: failed to create font face (size %.2f): %v", size, err)
		return nil
	}
	c.faces[size] = face
	return face
}
