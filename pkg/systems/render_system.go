package systems

import (
	"github.com/gonewx/avatarview/pkg/components"
	"github.com/gonewx/avatarview/pkg/ecs"
	"github.com/gonewx/avatarview/pkg/render/ebitensurface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CaptionFontSize 说明文字字号
const CaptionFontSize = 16

// RenderSystem 按实体创建顺序绘制头像控件和说明文字
type RenderSystem struct {
	entityManager *ecs.EntityManager
	faces         *ebitensurface.FaceCache

	// CaptionOffsetY 说明文字顶部与控件底边的距离
	CaptionOffsetY float64
}

// NewRenderSystem 创建渲染系统，faces 为 nil 时使用内置字体
func NewRenderSystem(em *ecs.EntityManager, faces *ebitensurface.FaceCache, captionOffsetY float64) *RenderSystem {
	if faces == nil {
		faces = ebitensurface.DefaultFaceCache()
	}
	return &RenderSystem{
		entityManager:  em,
		faces:          faces,
		CaptionOffsetY: captionOffsetY,
	}
}

// Draw 绘制所有头像
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.AvatarComponent](s.entityManager) {
		avatarComp, _ := ecs.GetComponent[*components.AvatarComponent](s.entityManager, id)
		avatarComp.Widget.Draw(screen)

		if caption, ok := ecs.GetComponent[*components.CaptionComponent](s.entityManager, id); ok {
			s.drawCaption(screen, avatarComp, caption)
		}
	}
}

// drawCaption 在控件下方水平居中绘制说明文字
func (s *RenderSystem) drawCaption(screen *ebiten.Image, avatarComp *components.AvatarComponent, caption *components.CaptionComponent) {
	if caption.Text == "" {
		return
	}
	face := s.faces.Face(CaptionFontSize)
	bounds := avatarComp.Widget.Bounds()

	op := &text.DrawOptions{}
	op.GeoM.Translate(
		float64(bounds.Min.X+bounds.Max.X)/2,
		float64(bounds.Max.Y)+s.CaptionOffsetY,
	)
	op.PrimaryAlign = text.AlignCenter
	if caption.Color != nil {
		op.ColorScale.ScaleWithColor(caption.Color)
	}
	text.Draw(screen, caption.Text, face, op)
}
