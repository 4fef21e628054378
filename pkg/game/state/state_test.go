package state

import "testing"

func TestWorldState_Names(t *testing.T) {
	if Running.String() != "running" || GameOver.String() != "game_over" || Victory.String() != "victory" {
		t.Errorf("names = %s, %s, %s", Running, GameOver, Victory)
	}
	if WorldState(99).String() != "unknown" {
		t.Error("out-of-range state has a name")
	}
	if Running.IsTerminal() || !GameOver.IsTerminal() || !Victory.IsTerminal() {
		t.Error("IsTerminal is wrong")
	}
}

func TestProgress_UpdateScore(t *testing.T) {
	p := NewProgress()
	if p.UpdateScore(50) {
		t.Error("level advanced at 50 points")
	}
	if !p.UpdateScore(50) || p.Level != 2 {
		t.Errorf("after 100 points: level %d, want 2", p.Level)
	}
	// 100 more reaches 200 = level 2 threshold
	if !p.UpdateScore(100) || p.Level != 3 {
		t.Errorf("after 200 points: level %d, want 3", p.Level)
	}
	p = NewProgress()
	p.UpdateScore(1000)
	if p.Level != 11 {
		t.Errorf("1000 points in one go: level %d, want 11", p.Level)
	}
}

func TestMessageLog_KeepsLastFive(t *testing.T) {
	var log MessageLog
	for i := 0; i < 8; i++ {
		log.AddMessage("msg", i)
	}
	msgs := log.Messages()
	if len(msgs) != 5 {
		t.Fatalf("len = %d, want 5", len(msgs))
	}
	if msgs[0].Args[0] != 3 || msgs[4].Args[0] != 7 {
		t.Errorf("kept %v .. %v, want 3 .. 7", msgs[0].Args, msgs[4].Args)
	}
	log.ClearMessages()
	if len(log.Messages()) != 0 {
		t.Error("ClearMessages left entries")
	}
}

func TestSnapshot_CellLookup(t *testing.T) {
	s := Snapshot{Cols: 2, Rows: 3, Cells: make([]CellView, 6)}
	for i := range s.Cells {
		s.Cells[i].Coord.X = i / 3
		s.Cells[i].Coord.Y = i % 3
	}
	c, ok := s.Cell(1, 2)
	if !ok || c.Coord.X != 1 || c.Coord.Y != 2 {
		t.Errorf("Cell(1,2) = %+v, %v", c, ok)
	}
	if _, ok := s.Cell(2, 0); ok {
		t.Error("Cell(2,0) is out of bounds but was found")
	}
}
