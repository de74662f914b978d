package netutil

import (
	"fmt"
	"net"
)

// CidrOverlap reports whether the address spaces of networks "a" and "b" overlap.
func CidrOverlap(a, b *net.IPNet) bool {
	return a.Contains(b.IP) || b.Contains(a.IP)
}

// IncrementIP returns the next IP address in network range.
func IncrementIP(netIP net.IP) net.IP {
	ip := make(net.IP, len(netIP))
	copy(ip, netIP)

	for j := len(ip) - 1; j >= 0; j-- {
		ip[j]++
		if ip[j] > 0 {
			break
		}
	}

	return ip
}

// Allocator carves consecutive subnets out of a parent network range.
// Blocks are handed out in request order, each aligned to its own size,
// which reproduces how subnet ranges were laid out by hand before: e.g.
// two /28s followed by two /18s inside 10.0.0.0/16 yield 10.0.0.0/28,
// 10.0.0.16/28, 10.0.64.0/18 and 10.0.128.0/18.
type Allocator struct {
	parent *net.IPNet
	offset uint32
}

func NewAllocator(parent *net.IPNet) (*Allocator, error) {
	if parent.IP.To4() == nil {
		return nil, fmt.Errorf("subnet allocation is supported for IPv4 ranges only: %s", parent)
	}
	return &Allocator{parent: parent}, nil
}

// Next returns the next unallocated block of the given prefix length.
func (a *Allocator) Next(maskBits int) (*net.IPNet, error) {
	parentBits, totalBits := a.parent.Mask.Size()
	if maskBits < parentBits || maskBits > totalBits {
		return nil, fmt.Errorf("invalid subnet prefix length /%d for parent range %s", maskBits, a.parent)
	}

	size := uint32(1) << uint(32-maskBits)

	// Align the cursor up to the block size.
	aligned := (a.offset + size - 1) &^ (size - 1)

	base := ipToUint32(a.parent.IP.To4())
	parentSize := uint32(1) << uint(32-parentBits)
	if aligned+size > parentSize {
		return nil, fmt.Errorf("parent range %s exhausted: no room for another /%d", a.parent, maskBits)
	}

	a.offset = aligned + size

	return &net.IPNet{
		IP:   uint32ToIP(base + aligned),
		Mask: net.CIDRMask(maskBits, 32),
	}, nil
}

func ipToUint32(ip net.IP) uint32 {
	return uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3])
}

func uint32ToIP(n uint32) net.IP {
	return net.IPv4(byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}
