package ebitensurface

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FaceCache 按字号缓存 text.GoTextFace
// 所有 face 共享同一个 GoTextFaceSource
type FaceCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

var defaultFaceCache *FaceCache

// DefaultFaceCache 返回使用内置 Go Regular 字体的共享缓存
func DefaultFaceCache() *FaceCache {
	if defaultFaceCache == nil {
		cache, err := NewFaceCache(goregular.TTF)
		if err != nil {
			// 内置字体解析失败属于构建问题
			panic(err)
		}
		defaultFaceCache = cache
	}
	return defaultFaceCache
}

// NewFaceCache 从 TTF/OTF 字体数据创建缓存
func NewFaceCache(fontData []byte) (*FaceCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &FaceCache{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// LoadFaceCache 从字体文件创建缓存
func LoadFaceCache(path string) (*FaceCache, error) {
	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	cache, err := NewFaceCache(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	return cache, nil
}

// Face 返回指定像素字号的 face，字号非正时返回 nil
func (c *FaceCache) Face(size float64) *text.GoTextFace {
	if size <= 0 {
		return nil
	}
	size = math.Round(size*4) / 4

	if face, ok := c.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    c.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	c.faces[size] = face
	return face
}
