package game

// judge ends the game if a player reached a winning tally, checking the capturer first.
func (g *Game) judge(capturer Player) bool {
	for _, p := range [2]Player{capturer, capturer.Opponent()} {
		if g.rules.IsWin(g.scores[p]) {
			g.end(p)
			return true
		}
	}
	return false
}

func (g *Game) end(winner Player) {
	g.state = Ended
	g.winner = winner
	g.candidates = nil
}

// recordReplay bumps the repeat counter if the current board was seen before, then stores it.
func (g *Game) recordReplay() {
	for _, b := range g.replays {
		if b == g.board {
			g.repeats++
			break
		}
	}
	g.replays = append(g.replays, g.board)
}
