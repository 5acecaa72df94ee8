package pool

import (
	"sync"
	"testing"
)

func TestPathBuilder_PushPop(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	steps := []struct {
		push  bool
		name  string
		index int
		want  string
	}{
		{true, "Coverage", -1, "Coverage"},
		{true, "payor", 0, "Coverage.payor[0]"},
		{true, "reference", -1, "Coverage.payor[0].reference"},
		{false, "", 0, "Coverage.payor[0]"},
		{false, "", 0, "Coverage"},
		{true, "payor", 1, "Coverage.payor[1]"},
		{false, "", 0, "Coverage"},
		{false, "", 0, ""},
		{false, "", 0, ""},
	}

	for i, s := range steps {
		if s.push {
			pb.Push(s.name, s.index)
		} else {
			pb.Pop()
		}
		if got := pb.String(); got != s.want {
			t.Fatalf("step %d: path = %q; want %q", i, got, s.want)
		}
	}
	if pb.Depth() != 0 {
		t.Errorf("Depth() = %d; want 0", pb.Depth())
	}
}

func TestPathBuilder_Truncate(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.AppendWithDot("Substance")
	n := pb.Len()
	pb.AppendWithDot("ingredient")
	pb.AppendIndex(2)

	if got := pb.String(); got != "Substance.ingredient[2]" {
		t.Fatalf("String() = %q", got)
	}

	pb.Truncate(-1)
	pb.Truncate(1000)
	if got := pb.String(); got != "Substance.ingredient[2]" {
		t.Errorf("out-of-range Truncate changed the path: %q", got)
	}

	pb.Truncate(n)
	if got := pb.String(); got != "Substance" {
		t.Errorf("Truncate(%d) = %q; want %q", n, got, "Substance")
	}
}

func TestPathBuilder_ResetClearsMarks(t *testing.T) {
	pb := AcquirePathBuilder()
	pb.Push("Library", -1)
	pb.Push("content", 0)
	pb.Reset()

	if pb.Len() != 0 || pb.Depth() != 0 {
		t.Errorf("Reset left len=%d depth=%d", pb.Len(), pb.Depth())
	}
	pb.Release()
}

func TestPathBuilder_NilRelease(t *testing.T) {
	var pb *PathBuilder
	pb.Release()
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"Coverage"}, "Coverage"},
		{[]string{"Coverage", "class", "value"}, "Coverage.class.value"},
	}

	for _, tt := range tests {
		if got := JoinPath(tt.segments...); got != tt.want {
			t.Errorf("JoinPath(%v) = %q; want %q", tt.segments, got, tt.want)
		}
	}
}

func TestPathBuilder_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pb := AcquirePathBuilder()
			defer pb.Release()
			pb.Push("PractitionerRole", -1)
			pb.Push("telecom", i)
			want := "PractitionerRole.telecom[" + itoa(i) + "]"
			if got := pb.String(); got != want {
				t.Errorf("got %q; want %q", got, want)
			}
		}(i)
	}
	wg.Wait()
}

func itoa(i int) string {
	pb := AcquirePathBuilder()
	defer pb.Release()
	pb.AppendIndex(i)
	s := pb.String()
	return s[1 : len(s)-1]
}

func BenchmarkPathBuilder_PushPop(b *testing.B) {
	pb := AcquirePathBuilder()
	defer pb.Release()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pb.Push("MedicationAdministration", -1)
		pb.Push("performer", 3)
		pb.Push("actor", -1)
		_ = pb.Len()
		pb.Pop()
		pb.Pop()
		pb.Pop()
	}
}
