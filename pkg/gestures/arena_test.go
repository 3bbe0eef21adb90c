package gestures

import "testing"

// recordingMember records arena callbacks for assertions.
type recordingMember struct {
	accepted []int64
	rejected []int64
}

func (m *recordingMember) AcceptGesture(pointerID int64) {
	m.accepted = append(m.accepted, pointerID)
}

func (m *recordingMember) RejectGesture(pointerID int64) {
	m.rejected = append(m.rejected, pointerID)
}

func TestArenaLoneMemberWinsOnClose(t *testing.T) {
	arena := NewGestureArena()
	member := &recordingMember{}

	arena.Add(1, member)
	arena.Close(1)

	if len(member.accepted) != 1 || member.accepted[0] != 1 {
		t.Errorf("accepted = %v, want [1]", member.accepted)
	}
	if len(member.rejected) != 0 {
		t.Errorf("rejected = %v, want none", member.rejected)
	}
}

func TestArenaResolveRejectsOthers(t *testing.T) {
	arena := NewGestureArena()
	winner := &recordingMember{}
	loser := &recordingMember{}

	arena.Add(1, winner)
	arena.Add(1, loser)
	arena.Close(1)
	arena.Resolve(1, winner)

	if len(winner.accepted) != 1 {
		t.Errorf("winner accepted = %v, want one win", winner.accepted)
	}
	if len(loser.rejected) != 1 {
		t.Errorf("loser rejected = %v, want one rejection", loser.rejected)
	}
	if len(loser.accepted) != 0 {
		t.Errorf("loser accepted = %v, want none", loser.accepted)
	}
}

func TestArenaRejectPromotesLastMember(t *testing.T) {
	arena := NewGestureArena()
	quitter := &recordingMember{}
	survivor := &recordingMember{}

	arena.Add(1, quitter)
	arena.Add(1, survivor)
	arena.Close(1)
	arena.Reject(1, quitter)

	if len(quitter.rejected) != 1 {
		t.Errorf("quitter rejected = %v, want one rejection", quitter.rejected)
	}
	if len(survivor.accepted) != 1 {
		t.Errorf("survivor accepted = %v, want promotion to winner", survivor.accepted)
	}
}

func TestArenaSweepFirstMemberWins(t *testing.T) {
	arena := NewGestureArena()
	first := &recordingMember{}
	second := &recordingMember{}

	arena.Add(1, first)
	arena.Add(1, second)
	arena.Close(1)
	arena.Sweep(1)

	if len(first.accepted) != 1 {
		t.Errorf("first accepted = %v, want win on sweep", first.accepted)
	}
	if len(second.rejected) != 1 {
		t.Errorf("second rejected = %v, want rejection on sweep", second.rejected)
	}
}

func TestArenaHoldDefersSweepUntilRelease(t *testing.T) {
	arena := NewGestureArena()
	holder := &recordingMember{}
	other := &recordingMember{}

	arena.Add(1, holder)
	arena.Add(1, other)
	arena.Close(1)
	arena.Hold(1, holder)
	arena.Sweep(1)

	if len(holder.accepted)+len(other.rejected) != 0 {
		t.Fatal("held arena must not resolve on sweep")
	}

	arena.Release(1)

	if len(holder.accepted) != 1 {
		t.Errorf("holder accepted = %v, want win after release", holder.accepted)
	}
	if len(other.rejected) != 1 {
		t.Errorf("other rejected = %v, want rejection after release", other.rejected)
	}
}

func TestArenaPointersAreIndependent(t *testing.T) {
	arena := NewGestureArena()
	a := &recordingMember{}
	b := &recordingMember{}

	arena.Add(1, a)
	arena.Add(2, b)
	arena.Close(1)

	if len(a.accepted) != 1 {
		t.Errorf("a accepted = %v, want win for pointer 1", a.accepted)
	}
	if len(b.accepted) != 0 {
		t.Errorf("b accepted = %v, want none while arena 2 is open", b.accepted)
	}
}
