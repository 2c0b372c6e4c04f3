package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-pebble/internal/core"
)

var keyActions = map[ebiten.Key][]core.Action{
	ebiten.KeySpace:     {core.ActionJump},
	ebiten.KeyArrowUp:   {core.ActionJump},
	ebiten.KeyW:         {core.ActionJump},
	ebiten.KeyP:         {core.ActionPause},
	ebiten.KeyEscape:    {core.ActionPause, core.ActionCancel},
	ebiten.KeyEnter:     {core.ActionConfirm},
	ebiten.KeyB:         {core.ActionCancel},
	ebiten.KeyBackspace: {core.ActionCancel},
	ebiten.KeyF:         {core.ActionFullscreen},
}

var padActions = map[ebiten.StandardGamepadButton][]core.Action{
	ebiten.StandardGamepadButtonRightBottom: {core.ActionJump},
	ebiten.StandardGamepadButtonRightRight:  {core.ActionPause, core.ActionCancel},
	ebiten.StandardGamepadButtonCenterRight: {core.ActionConfirm},
	ebiten.StandardGamepadButtonCenterLeft:  {core.ActionCancel},
	ebiten.StandardGamepadButtonRightTop:    {core.ActionFullscreen},
}

// readEdges collects the actions whose device went from released to
// pressed since the previous Update.
func readEdges() core.InputFrame {
	in := core.NewInputFrame()

	for k, actions := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			for _, a := range actions {
				in.Set(a)
			}
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, actions := range padActions {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				for _, a := range actions {
					in.Set(a)
				}
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		in.Set(core.ActionJump)
	}

	return in
}
