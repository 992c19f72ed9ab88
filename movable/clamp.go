package movable

import "github.com/nudgeui/nudge"

// clampMove computes the position an element may actually take for a
// pointer delta, under one of two mutually exclusive constraint modes.
//
// With a region, the element's live box is kept inside region ± margin per
// axis. The near-edge and far-edge corrections are mutually exclusive per
// axis per move: an element flush against one edge is not simultaneously
// corrected against the opposite one. Cumulative displacement is not
// tracked in this mode and is returned unchanged.
//
// Without a region, the running signed displacement since attachment is
// clamped into [-limit, +limit] per axis; a non-positive limit leaves that
// axis unconstrained. The returned cumulative must be persisted by the
// caller for the next move.
func clampMove(cur nudge.Position, d nudge.Delta, box nudge.Rect, region *nudge.Rect, lim normLimit, cum nudge.Delta) (nudge.Position, nudge.Delta) {
	pos := cur.Add(d)

	if region != nil {
		marginX := lim.x.resolve(box.W)
		marginY := lim.y.resolve(box.H)

		if newTop := box.Y + d.DY + marginY; newTop < region.Y {
			pos.Top += region.Y - newTop
		} else if newBottom := box.Bottom() + d.DY - marginY; newBottom > region.Bottom() {
			pos.Top -= newBottom - region.Bottom()
		}

		if newLeft := box.X + d.DX + marginX; newLeft < region.X {
			pos.Left += region.X - newLeft
		} else if newRight := box.Right() + d.DX - marginX; newRight > region.Right() {
			pos.Left -= newRight - region.Right()
		}

		return pos, cum
	}

	if bound := lim.x.resolve(box.W); bound > 0 {
		c := cum.DX + d.DX
		if c > bound {
			pos.Left -= c - bound
			c = bound
		} else if c < -bound {
			pos.Left += -bound - c
			c = -bound
		}
		cum.DX = c
	} else {
		cum.DX += d.DX
	}

	if bound := lim.y.resolve(box.H); bound > 0 {
		c := cum.DY + d.DY
		if c > bound {
			pos.Top -= c - bound
			c = bound
		} else if c < -bound {
			pos.Top += -bound - c
			c = -bound
		}
		cum.DY = c
	} else {
		cum.DY += d.DY
	}

	return pos, cum
}
