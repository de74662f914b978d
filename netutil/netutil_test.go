package netutil

import (
	"net"
	"testing"
)

func TestCidrOverlap(t *testing.T) {
	cases := []struct {
		a, b    string
		overlap bool
	}{
		{"10.0.0.0/16", "10.0.64.0/18", true},
		{"10.0.0.0/24", "10.0.1.0/24", false},
		{"192.168.0.0/16", "10.0.0.0/8", false},
	}
	for _, c := range cases {
		_, a, _ := net.ParseCIDR(c.a)
		_, b, _ := net.ParseCIDR(c.b)
		if actual := CidrOverlap(a, b); actual != c.overlap {
			t.Errorf("CidrOverlap(%s, %s) = %v, expected %v", c.a, c.b, actual, c.overlap)
		}
	}
}

func TestIncrementIP(t *testing.T) {
	ip := net.ParseIP("10.0.0.255").To4()
	if next := IncrementIP(ip); !next.Equal(net.ParseIP("10.0.1.0")) {
		t.Errorf("expected 10.0.1.0, got %s", next)
	}
}

func TestAllocatorLaysOutAlignedBlocks(t *testing.T) {
	_, parent, _ := net.ParseCIDR("10.0.0.0/16")
	a, err := NewAllocator(parent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	requests := []struct {
		maskBits int
		expected string
	}{
		{28, "10.0.0.0/28"},
		{28, "10.0.0.16/28"},
		{18, "10.0.64.0/18"},
		{18, "10.0.128.0/18"},
	}
	for _, r := range requests {
		block, err := a.Next(r.maskBits)
		if err != nil {
			t.Fatalf("Next(%d): unexpected error: %v", r.maskBits, err)
		}
		if block.String() != r.expected {
			t.Errorf("Next(%d) = %s, expected %s", r.maskBits, block, r.expected)
		}
	}
}

func TestAllocatorExhaustion(t *testing.T) {
	_, parent, _ := net.ParseCIDR("10.0.0.0/24")
	a, err := NewAllocator(parent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := a.Next(25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Next(25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Next(25); err == nil {
		t.Error("expected exhaustion error but allocation succeeded")
	}
}

func TestAllocatorRejectsOversizedBlock(t *testing.T) {
	_, parent, _ := net.ParseCIDR("10.0.0.0/24")
	a, err := NewAllocator(parent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Next(16); err == nil {
		t.Error("expected error for /16 inside /24 but allocation succeeded")
	}
}
