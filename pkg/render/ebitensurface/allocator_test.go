package ebitensurface

import (
	"testing"
)

// TestAllocatorPooling 测试缓冲区按尺寸回收复用
func TestAllocatorPooling(t *testing.T) {
	a := NewAllocator(nil)

	s1 := a.NewSurface(64, 64)
	s2 := a.NewSurface(64, 64)
	if a.Created() != 2 {
		t.Fatalf("Created = %d, want 2", a.Created())
	}

	a.Release(s1)
	a.Release(s2)
	if a.Pooled() != 2 {
		t.Fatalf("Pooled = %d, want 2", a.Pooled())
	}

	// 同尺寸复用，不再创建新纹理
	s3 := a.NewSurface(64, 64)
	s4 := a.NewSurface(64, 64)
	if a.Created() != 2 {
		t.Errorf("Created after reuse = %d, want 2", a.Created())
	}
	if a.Pooled() != 0 {
		t.Errorf("Pooled after reuse = %d, want 0", a.Pooled())
	}

	// 不同尺寸需要新建
	s5 := a.NewSurface(32, 32)
	if a.Created() != 3 {
		t.Errorf("Created after new size = %d, want 3", a.Created())
	}
	if w, h := s5.Size(); w != 32 || h != 32 {
		t.Errorf("Size = %dx%d, want 32x32", w, h)
	}

	a.Release(s3)
	a.Release(s4)
	a.Release(s5)
	a.Purge()
	if a.Pooled() != 0 {
		t.Errorf("Pooled after Purge = %d, want 0", a.Pooled())
	}
}

// TestAllocatorPoolLimit 测试超出池容量的缓冲区直接释放
func TestAllocatorPoolLimit(t *testing.T) {
	a := NewAllocator(nil)

	s1 := a.NewSurface(8, 8)
	s2 := a.NewSurface(8, 8)
	s3 := a.NewSurface(8, 8)
	a.Release(s1)
	a.Release(s2)
	a.Release(s3)

	if a.Pooled() != maxPooledPerSize {
		t.Errorf("Pooled = %d, want %d", a.Pooled(), maxPooledPerSize)
	}
}

// TestFaceCache 测试字号量化和缓存
func TestFaceCache(t *testing.T) {
	c := DefaultFaceCache()

	if c.Face(0) != nil || c.Face(-3) != nil {
		t.Error("Face with non-positive size should return nil")
	}

	a := c.Face(33.0)
	b := c.Face(33.05)
	if a != b {
		t.Error("sizes within the same quarter pixel should share a face")
	}
	if a.Size != 33 {
		t.Errorf("Size = %v, want 33", a.Size)
	}
	if c.Face(40) == a {
		t.Error("different sizes should not share a face")
	}
}

// TestLoadFaceCacheMissing 测试字体文件不存在时返回错误
func TestLoadFaceCacheMissing(t *testing.T) {
	if _, err := LoadFaceCache("testdata/missing.ttf"); err == nil {
		t.Error("LoadFaceCache should fail for a missing file")
	}
	if _, err := NewFaceCache([]byte("not a font")); err == nil {
		t.Error("NewFaceCache should fail for invalid data")
	}
}
