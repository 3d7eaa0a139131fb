package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

type packet struct {
	version, typeID int
	value           int
	subs            []packet
}

// reader yields the transmission bit by bit, most significant first.
type reader struct {
	bits []byte
	pos  int
}

func newReader(transmission string) *reader {
	raw := aoc.MustGet(hex.DecodeString(strings.TrimSpace(transmission)))
	bits := make([]byte, 0, len(raw)*8)
	for _, b := range raw {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b>>i&1)
		}
	}
	return &reader{bits: bits}
}

func (r *reader) take(n int) int {
	v := 0
	for ; n > 0; n-- {
		v = v<<1 | int(r.bits[r.pos])
		r.pos++
	}
	return v
}

func parsePacket(r *reader) packet {
	p := packet{version: r.take(3), typeID: r.take(3)}
	if p.typeID == 4 {
		for {
			group := r.take(5)
			p.value = p.value<<4 | group&0xf
			if group&0x10 == 0 {
				return p
			}
		}
	}
	if r.take(1) == 0 {
		end := r.take(15) + r.pos
		for r.pos < end {
			p.subs = append(p.subs, parsePacket(r))
		}
	} else {
		for n := r.take(11); n > 0; n-- {
			p.subs = append(p.subs, parsePacket(r))
		}
	}
	return p
}

func (p packet) versionSum() int {
	sum := p.version
	for _, s := range p.subs {
		sum += s.versionSum()
	}
	return sum
}

func (p packet) eval() int {
	if p.typeID == 4 {
		return p.value
	}
	vals := make([]int, len(p.subs))
	for i, s := range p.subs {
		vals[i] = s.eval()
	}
	boolToInt := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	switch p.typeID {
	case 0:
		return aoc.Sum(vals...)
	case 1:
		return aoc.Fold(vals, func(a, b int) int { return a * b }, 1)
	case 2:
		return slices.Min(vals)
	case 3:
		return slices.Max(vals)
	case 5:
		return boolToInt(vals[0] > vals[1])
	case 6:
		return boolToInt(vals[0] < vals[1])
	case 7:
		return boolToInt(vals[0] == vals[1])
	}
	log.Fatalf("bad packet type %d", p.typeID)
	return 0
}

func main() {
	p := parsePacket(newReader(string(aoc.Input())))
	fmt.Println(p.versionSum())
	fmt.Println(p.eval())
}
