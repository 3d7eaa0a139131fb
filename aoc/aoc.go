// Package aoc holds the quick & dirty utilities shared by the daily
// Advent of Code 2021 solutions. (descended from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Input reads the entire puzzle input from stdin.
func Input() []byte {
	return MustGet(io.ReadAll(os.Stdin))
}

// Lines splits the input into lines, without the trailing newline.
func Lines(in []byte) []string {
	return strings.Split(strings.TrimSuffix(string(in), "\n"), "\n")
}

// Blocks splits the input into blank-line separated blocks.
func Blocks(in []byte) []string {
	return strings.Split(strings.TrimSuffix(string(in), "\n"), "\n\n")
}

// ForLines calls onLine for each line of the input.
func ForLines(in []byte, onLine func(line string)) {
	s := bufio.NewScanner(bytes.NewReader(in))
	for s.Scan() {
		onLine(s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

var debugEnabled = os.Getenv("AOC_DEBUG") != ""

// Debugf prints to stderr when AOC_DEBUG is set.
func Debugf(format string, args ...any) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix returns s without the prefix, failing hard if it is missing.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
