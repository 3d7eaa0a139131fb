package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ggazebo/aoc2021/aoc"
)

const zReg = 'z' - 'w'

type instr struct {
	op   string
	a    int
	b    int
	bReg bool
}

func reg(s string) int {
	if len(s) == 1 && s[0] >= 'w' && s[0] <= 'z' {
		return int(s[0] - 'w')
	}
	log.Fatalf("bad register %q", s)
	return -1
}

func parse(in []byte) []instr {
	var prog []instr
	aoc.ForLines(in, func(line string) {
		f := strings.Fields(line)
		switch {
		case len(f) == 2 && f[0] == "inp":
			prog = append(prog, instr{op: f[0], a: reg(f[1])})
		case len(f) == 3:
			i := instr{op: f[0], a: reg(f[1])}
			if c := f[2][0]; c >= 'w' && c <= 'z' {
				i.b, i.bReg = reg(f[2]), true
			} else {
				i.b = aoc.Int(f[2])
			}
			prog = append(prog, i)
		default:
			log.Fatalf("bad instruction %q", line)
		}
	})
	return prog
}

func exec(prog []instr, input []int, regs [4]int) [4]int {
	for _, i := range prog {
		if i.op == "inp" {
			if len(input) == 0 {
				log.Fatalf("out of input")
			}
			regs[i.a], input = input[0], input[1:]
			continue
		}
		b := i.b
		if i.bReg {
			b = regs[i.b]
		}
		switch i.op {
		case "add":
			regs[i.a] += b
		case "mul":
			regs[i.a] *= b
		case "div":
			if b == 0 {
				log.Fatalf("div %s 0", string(rune('w'+i.a)))
			}
			regs[i.a] /= b
		case "mod":
			if regs[i.a] < 0 || b <= 0 {
				log.Fatalf("mod %d %% %d", regs[i.a], b)
			}
			regs[i.a] %= b
		case "eql":
			if regs[i.a] == b {
				regs[i.a] = 1
			} else {
				regs[i.a] = 0
			}
		default:
			log.Fatalf("bad op %q", i.op)
		}
	}
	return regs
}

// blocks splits the program at its inp instructions, one block per digit.
func blocks(prog []instr) [][]instr {
	var bs [][]instr
	for _, i := range prog {
		if i.op == "inp" {
			bs = append(bs, nil)
		}
		if len(bs) == 0 {
			log.Fatalf("program must start with inp")
		}
		bs[len(bs)-1] = append(bs[len(bs)-1], i)
	}
	return bs
}

// divisor returns the product of the block's constant z divisors, or 0
// when the shrinkage cannot be bounded statically.
func divisor(b []instr) int {
	d := 1
	for _, i := range b {
		if i.op != "div" || i.a != zReg {
			continue
		}
		if i.bReg || i.b < 1 {
			return 0
		}
		d *= i.b
	}
	return d
}

// zCaps[i] bounds z entering block i: z only shrinks through the div
// instructions of the remaining blocks, so past the product of their
// divisors it can never return to zero.
func zCaps(bs [][]instr) []int {
	const maxZ = 1 << 62
	caps := make([]int, len(bs)+1)
	caps[len(bs)] = 1
	for i := len(bs) - 1; i >= 0; i-- {
		d := divisor(bs[i])
		if d == 0 || caps[i+1] > maxZ/d {
			caps[i] = maxZ
		} else {
			caps[i] = caps[i+1] * d
		}
	}
	return caps
}

type aluState struct {
	block int
	regs  [4]int
}

// bestModelNumber finds the largest (or smallest) all-digit input the
// program accepts, trying digits in order and remembering register
// states that can no longer reach z == 0.
func bestModelNumber(prog []instr, largest bool) string {
	bs := blocks(prog)
	caps := zCaps(bs)
	digits := "987654321"
	if !largest {
		digits = "123456789"
	}
	dead := map[aluState]bool{}
	var rec func(block int, regs [4]int) (string, bool)
	rec = func(block int, regs [4]int) (string, bool) {
		if block == len(bs) {
			return "", regs[zReg] == 0
		}
		if regs[zReg] >= caps[block] || dead[aluState{block, regs}] {
			return "", false
		}
		for _, d := range digits {
			out := exec(bs[block], []int{int(d - '0')}, regs)
			if rest, ok := rec(block+1, out); ok {
				return string(d) + rest, true
			}
		}
		dead[aluState{block, regs}] = true
		return "", false
	}
	model, ok := rec(0, [4]int{})
	if !ok {
		log.Fatalf("no model number accepted")
	}
	return model
}

func main() {
	prog := parse(aoc.Input())
	fmt.Println(bestModelNumber(prog, true))
	fmt.Println(bestModelNumber(prog, false))
}
