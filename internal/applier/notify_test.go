package applier

import "testing"

func TestNotifierDeliversToSubscribers(t *testing.T) {
	n := NewNotifier()

	var got []ContentChange
	n.Subscribe(func(changes []ContentChange) {
		got = changes
	})

	want := []ContentChange{LineChanged{LineNumber: 1, NewContent: "abc"}}
	n.Notify(want)

	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if lc, ok := got[0].(LineChanged); !ok || lc.LineNumber != 1 || lc.NewContent != "abc" {
		t.Errorf("got[0] = %#v, want LineChanged{1, \"abc\"}", got[0])
	}
}

func TestNotifierClosedSubscriptionStopsReceiving(t *testing.T) {
	n := NewNotifier()

	calls := 0
	sub := n.Subscribe(func(changes []ContentChange) {
		calls++
	})

	n.Notify([]ContentChange{LineChanged{LineNumber: 1, NewContent: "a"}})
	sub.Close()
	n.Notify([]ContentChange{LineChanged{LineNumber: 1, NewContent: "b"}})

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (after Close, observer should not fire again)", calls)
	}
}

func TestNotifierMultipleSubscribers(t *testing.T) {
	n := NewNotifier()

	var aCalls, bCalls int
	n.Subscribe(func(changes []ContentChange) { aCalls++ })
	n.Subscribe(func(changes []ContentChange) { bCalls++ })

	n.Notify([]ContentChange{LineChanged{LineNumber: 1, NewContent: "x"}})

	if aCalls != 1 || bCalls != 1 {
		t.Errorf("aCalls=%d bCalls=%d, want 1,1", aCalls, bCalls)
	}
}

func TestNotifierEmptyChangesSkipsDelivery(t *testing.T) {
	n := NewNotifier()

	calls := 0
	n.Subscribe(func(changes []ContentChange) { calls++ })

	n.Notify(nil)

	if calls != 0 {
		t.Errorf("calls = %d, want 0 for an empty change batch", calls)
	}
}

func TestSubscriptionCloseNilSafe(t *testing.T) {
	var sub *Subscription
	sub.Close()
}
