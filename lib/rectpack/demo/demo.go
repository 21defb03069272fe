package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/depp/mkspritesheet/lib/rectpack"
)

const sizeLimit = 1024

type stats struct {
	fillSum  float64
	attempts int
	failures int
	minFill  float64
	maxFill  float64
}

func (s *stats) add(fill float64) {
	if s.attempts == 0 || fill < s.minFill {
		s.minFill = fill
	}
	if s.attempts == 0 || fill > s.maxFill {
		s.maxFill = fill
	}
	s.fillSum += fill
	s.attempts++
}

func mainE() error {
	maxsizeArg := flag.Int("maxsize", 32, "maximum size of generated rectangles")
	minsizeArg := flag.Int("minsize", 1, "minimum size of generated rectangles")
	countArg := flag.Int("count", 100, "number of generated rectangles")
	iterArg := flag.Int("iterations", 100, "number of iterations")
	limitArg := flag.Int("limit", rectpack.DefaultMaxSize, "maximum canvas width and height")
	flag.Parse()
	if args := flag.Args(); len(args) != 0 {
		return fmt.Errorf("unexpected argument: %q", args[0])
	}
	iterCount := *iterArg
	if iterCount < 0 {
		iterCount = 0
	}
	minsize := *minsizeArg
	if minsize < 1 || sizeLimit < minsize {
		return fmt.Errorf("minsize %d is not between 1 and %d", minsize, sizeLimit)
	}
	maxsize := *maxsizeArg
	if maxsize < minsize || sizeLimit < maxsize {
		return fmt.Errorf("maxsize %d is not between %d and %d", maxsize, minsize, sizeLimit)
	}
	if *countArg < 0 {
		return fmt.Errorf("invalid count: %d", *countArg)
	}
	entries := make([]rectpack.Entry, *countArg)
	if minsize == maxsize {
		iterCount = 1
	}
	rnd := rand.New(rand.NewSource(0x1234))
	opts := rectpack.Options{MaxSize: *limitArg}
	var st stats
	n := maxsize - minsize + 1
	for iter := 0; iter < iterCount; iter++ {
		var area int
		for i := range entries {
			e := rectpack.NewEntry(minsize+rnd.Intn(n), minsize+rnd.Intn(n))
			entries[i] = e
			area += e.Area
		}
		res, err := rectpack.Pack(entries, &opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Pack failed:", err)
			st.failures++
			continue
		}
		st.add(res.Fill(area))
	}
	if _, err := fmt.Println("Iterations,Failures,MeanFill,MinFill,MaxFill"); err != nil {
		return err
	}
	var mean float64
	if st.attempts > 0 {
		mean = st.fillSum / float64(st.attempts)
	}
	if _, err := fmt.Printf("%d,%d,%.5f,%.5f,%.5f\n",
		iterCount, st.failures, mean, st.minFill, st.maxFill); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
