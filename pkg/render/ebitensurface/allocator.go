package ebitensurface

import (
	"image"

	"github.com/gonewx/avatarview/pkg/avatar"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxPooledPerSize 每种尺寸最多保留的空闲缓冲区数量
// 一次合成同时需要两块（图像 + 遮罩）
const maxPooledPerSize = 2

// Allocator 为合成过程分配 GPU 离屏缓冲区
//
// 每帧新建纹理开销较大，因此 Release 的缓冲区按尺寸回收复用；
// 超出池容量的缓冲区立即 Deallocate。尺寸变化时调用 Purge 释放全部空闲缓冲区。
type Allocator struct {
	faces *FaceCache
	free  map[image.Point][]*ebiten.Image

	// created 实际创建过的纹理数量
	created int
}

// NewAllocator 创建分配器，faces 为 nil 时使用内置字体
func NewAllocator(faces *FaceCache) *Allocator {
	if faces == nil {
		faces = DefaultFaceCache()
	}
	return &Allocator{
		faces: faces,
		free:  make(map[image.Point][]*ebiten.Image),
	}
}

// NewSurface 实现 avatar.SurfaceAllocator
func (a *Allocator) NewSurface(width, height int) avatar.Surface {
	key := image.Pt(width, height)
	if pool := a.free[key]; len(pool) > 0 {
		img := pool[len(pool)-1]
		a.free[key] = pool[:len(pool)-1]
		return Wrap(img, a.faces)
	}

	a.created++
	return Wrap(ebiten.NewImage(max(width, 1), max(height, 1)), a.faces)
}

// Release 实现 avatar.SurfaceAllocator
func (a *Allocator) Release(s avatar.Surface) {
	es, ok := s.(*Surface)
	if !ok {
		return
	}

	w, h := es.Size()
	key := image.Pt(w, h)
	if len(a.free[key]) >= maxPooledPerSize {
		es.img.Deallocate()
		return
	}
	a.free[key] = append(a.free[key], es.img)
}

// Purge 释放所有空闲缓冲区
func (a *Allocator) Purge() {
	for key, pool := range a.free {
		for _, img := range pool {
			img.Deallocate()
		}
		delete(a.free, key)
	}
}

// Created 实际创建过的纹理数量
func (a *Allocator) Created() int {
	return a.created
}

// Pooled 当前空闲缓冲区数量
func (a *Allocator) Pooled() int {
	n := 0
	for _, pool := range a.free {
		n += len(pool)
	}
	return n
}
