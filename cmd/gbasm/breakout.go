package main

import (
	"cmp"

	"github.com/ezrec/gbasm/asm"
	"github.com/ezrec/gbasm/flow"
	"github.com/ezrec/gbasm/gameboy"
)

const (
	TILE_WALL_TOP    = 0x01
	TILE_WALL_SIDE   = 0x02
	TILE_BRICK_LEFT  = 0x05
	TILE_BRICK_RIGHT = 0x06
	TILE_BLANK       = 0x08
	TILE_COUNT       = 36

	SCREEN_W = 20 // Visible tilemap columns.
	SCREEN_H = 18 // Visible tilemap rows.
)

// wallTiles are the tiles the ball bounces off.
var wallTiles = []uint8{0x00, 0x01, 0x02, 0x04, 0x05, 0x06, 0x07}

var paddleRows = []string{
	"`13333331",
	"`30000003",
	"`13333331",
	"`00000000",
	"`00000000",
	"`00000000",
	"`00000000",
	"`00000000",
}

var ballRows = []string{
	"`00033000",
	"`00322300",
	"`03222230",
	"`03222230",
	"`00322300",
	"`00033000",
	"`00000000",
	"`00000000",
}

// playfield is a walled screen with four rows of bricks.
func playfield() (rows [][gameboy.TILEMAP_W]uint8) {
	rows = make([][gameboy.TILEMAP_W]uint8, SCREEN_H)
	for y := range rows {
		for x := range rows[y] {
			tile := uint8(TILE_BLANK)
			switch {
			case x >= SCREEN_W:
			case y == 0:
				tile = TILE_WALL_TOP
			case x == 0 || x == SCREEN_W-1:
				tile = TILE_WALL_SIDE
			case y >= 2 && y < 6 && x >= 2 && x < SCREEN_W-2:
				tile = TILE_BRICK_LEFT
				if x%2 == 1 {
					tile = TILE_BRICK_RIGHT
				}
			}
			rows[y][x] = tile
		}
	}
	return
}

// isWallTile sets Zero if the accumulator is a wall tile.
func isWallTile(name string) (instrs []asm.Instr) {
	instrs = append(instrs, asm.Label(name))
	for _, tile := range wallTiles {
		instrs = append(instrs, asm.Cp(asm.Imm(tile)), asm.RetCond(asm.COND_Z))
	}
	instrs = append(instrs, asm.Ret())
	return
}

// breakout adds the game to a builder.
func breakout(b *gameboy.Builder) (err error) {
	for _, def := range []struct{ name, expr string }{
		{"BRICK_LEFT", "$05"},
		{"BRICK_RIGHT", "$06"},
		{"BLANK_TILE", "$08"},
		{"DIGIT_OFFSET", "$1A"},
	} {
		_, err = b.DefineConst(def.name, def.expr)
		if err != nil {
			return
		}
	}

	_, err = b.AddBackground("Tiles", gameboy.TileFile("tiles.2bpp", TILE_COUNT))
	if err != nil {
		return
	}

	_, err = b.AddTilemap("Tilemap", playfield())
	if err != nil {
		return
	}

	paddle, err := b.AddSprite("Paddle", gameboy.TileRows(paddleRows...), 16, 128, 0)
	if err != nil {
		return
	}

	ball, err := b.AddSprite("Ball", gameboy.TileRows(ballRows...), 32, 100, 0)
	if err != nil {
		return
	}

	momentumX, err := b.I8("wBallMomentumX", 1)
	if err != nil {
		return
	}

	momentumY, err := b.I8("wBallMomentumY", -1)
	if err != nil {
		return
	}

	err = b.DefineFunction("IsWallTile", isWallTile("IsWallTile"))
	if err != nil {
		return
	}

	// tile loads the tile under a point near the ball, leaving its address
	// in 'hl'. The first invalid point is reported in pivotErr.
	var pivotErr error
	tile := func(dx, dy int) flow.Node {
		pivot, err := ball.Pivot(dx, dy)
		if err != nil {
			pivotErr = cmp.Or(pivotErr, err)
			return nil
		}
		return flow.Group(
			flow.Call("GetTileByPixel", pivot),
			flow.Seq(asm.Ld(asm.Reg(asm.REG_A), asm.AddrReg(asm.REG_HL))),
		)
	}

	blankPair := func(step asm.Instr) flow.Node {
		blank := asm.Ld(asm.AddrReg(asm.REG_HL), asm.Sym("BLANK_TILE"))
		return flow.Seq(blank, step, blank)
	}

	brick := flow.Group(
		flow.IfConst(tile(0, 1), flow.CMP_EQ, asm.Sym("BRICK_LEFT"), blankPair(asm.Inc(asm.Reg(asm.REG_HL)))),
		flow.IfA(flow.CMP_EQ, asm.Sym("BRICK_RIGHT"), blankPair(asm.Dec(asm.Reg(asm.REG_HL)))),
	)
	if pivotErr != nil {
		return pivotErr
	}

	err = b.DefineFunctionFrom("CheckAndHandleBrick", brick)
	if err != nil {
		return
	}

	bounce := func(dx, dy int, then flow.Node) flow.Node {
		return flow.IfCall("IsWallTile", flow.IsTrue, then).WithSetup(tile(dx, dy))
	}

	b.MainLoop(
		ball.MoveX(momentumX),
		ball.MoveY(momentumY),
		bounce(0, 1, flow.Group(flow.Call("CheckAndHandleBrick"), momentumY.Set(1))),
		bounce(-1, 0, momentumX.Set(-1)),
		bounce(1, 0, momentumX.Set(1)),
		bounce(0, -1, momentumY.Set(-1)),
		flow.If(paddle.GetY(), flow.CMP_EQ, flow.Plus(ball.GetY(), 5),
			flow.If(ball.GetX(), flow.CMP_GT, flow.Minus(paddle.GetX(), 8),
				flow.If(ball.GetX(), flow.CMP_LT, flow.Plus(paddle.GetX(), 16),
					momentumY.Set(-1)))),
	)
	if pivotErr != nil {
		return pivotErr
	}

	err = b.OnPress(gameboy.PAD_LEFT, paddle.MoveLeft(1, 15))
	if err != nil {
		return
	}

	err = b.OnPress(gameboy.PAD_RIGHT, paddle.MoveRight(1, 105))
	return
}
