package useragent

import "testing"

func TestNewPool_DefaultFallback(t *testing.T) {
	p := NewPool(nil)
	ua := p.GetSequential()
	found := false
	for _, d := range DefaultPool {
		if ua == d {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a default UA, got %q", ua)
	}
}

func TestNewPool_CopiesInput(t *testing.T) {
	uas := []string{"ua-a", "ua-b"}
	p := NewPool(uas)
	uas[0] = "mutated"

	if got := p.GetSequential(); got != "ua-a" {
		t.Errorf("pool must not observe caller mutation, got %q", got)
	}
}

func TestGetSequential_RoundRobin(t *testing.T) {
	p := NewPool([]string{"a", "b", "c"})

	want := []string{"a", "b", "c", "a", "b"}
	for i, w := range want {
		if got := p.GetSequential(); got != w {
			t.Errorf("call %d = %q, want %q", i, got, w)
		}
	}
}

func TestGetRandom_Membership(t *testing.T) {
	uas := []string{"a", "b"}
	p := NewPool(uas)

	for i := 0; i < 20; i++ {
		got := p.GetRandom()
		if got != "a" && got != "b" {
			t.Fatalf("GetRandom returned %q, not in pool", got)
		}
	}
}

func TestEmptyPool(t *testing.T) {
	var p Pool
	if got := p.GetSequential(); got != "" {
		t.Errorf("GetSequential on empty pool = %q, want empty", got)
	}
	if got := p.GetRandom(); got != "" {
		t.Errorf("GetRandom on empty pool = %q, want empty", got)
	}
}
