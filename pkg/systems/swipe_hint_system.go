package systems

import (
	"math"

	"github.com/decker502/lovenote/pkg/components"
	"github.com/decker502/lovenote/pkg/ecs"
	"github.com/decker502/lovenote/pkg/utils"
)

// 手势关键帧（时间为周期内的比例）
var (
	swipeHandTimes   = []float64{0, 0.3, 0.7, 1}
	swipeHandOffsets = []float64{-0.5, 0, -1, -0.5}
	swipeHandAlphas  = []float64{0, 1, 1, 0}
)

// SwipeHintSystem 滑动提示动画系统
// 提示的显隐由 TileBoardComponent.HintVisible 决定
type SwipeHintSystem struct {
	entityManager *ecs.EntityManager
	hintEntity    ecs.EntityID
}

// NewSwipeHintSystem 创建滑动提示系统
func NewSwipeHintSystem(em *ecs.EntityManager) *SwipeHintSystem {
	s := &SwipeHintSystem{entityManager: em}
	s.hintEntity = em.CreateEntity()
	em.AddComponent(s.hintEntity, &components.SwipeHintComponent{})
	return s
}

// Hint 返回提示动画状态
func (s *SwipeHintSystem) Hint() *components.SwipeHintComponent {
	hint, _ := ecs.GetComponent[*components.SwipeHintComponent](s.entityManager, s.hintEntity)
	return hint
}

// Update 根据场景状态更新提示动画
func (s *SwipeHintSystem) Update(deltaTime float64) {
	hint := s.Hint()
	if hint == nil {
		return
	}

	visible := false
	if boards := ecs.GetEntitiesWith1[*components.TileBoardComponent](s.entityManager); len(boards) > 0 {
		if board, ok := ecs.GetComponent[*components.TileBoardComponent](s.entityManager, boards[0]); ok {
			visible = board.HintVisible
		}
	}

	if !visible {
		*hint = components.SwipeHintComponent{}
		return
	}

	if !hint.Visible {
		hint.Visible = true
		hint.Elapsed = 0
	} else {
		hint.Elapsed += deltaTime
	}

	hint.Alpha = utils.EaseOutCubic(utils.Progress(hint.Elapsed,
		components.SwipeHintAppearDelay, components.SwipeHintAppearDuration))
	hint.HandOffset, hint.HandAlpha = SwipeHandPose(hint.Elapsed)
}

// SwipeHandPose 手势在某一时刻的水平偏移（手势宽度的比例）和透明度
// 每个周期滑动 2.5 秒，之后停顿 0.5 秒
func SwipeHandPose(elapsed float64) (offset, alpha float64) {
	period := components.SwipeHintCycleDuration + components.SwipeHintRepeatDelay
	local := math.Mod(math.Max(0, elapsed), period)
	if local >= components.SwipeHintCycleDuration {
		return swipeHandOffsets[len(swipeHandOffsets)-1], swipeHandAlphas[len(swipeHandAlphas)-1]
	}

	u := local / components.SwipeHintCycleDuration
	return utils.Keyframes(u, swipeHandOffsets, swipeHandTimes), utils.Keyframes(u, swipeHandAlphas, swipeHandTimes)
}
