package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/papertest/testgen/pkg/models"
	"github.com/papertest/testgen/pkg/pdf"
)

const defaultIterations = 1000

// perfTest generates the project n times and prints timing statistics.
func perfTest(p *models.Project, rng *rand.Rand, n int, w io.Writer) error {
	fmt.Fprintf(w, "Testing PDF generation %d times\n", n)

	times := make([]time.Duration, 0, n)
	for range n {
		elapsed, err := pdf.GeneratePDF(p, rng)
		if err != nil {
			return err
		}
		times = append(times, elapsed)
	}

	median, mean := stats(times)
	fmt.Fprintf(w, "Median: %v\n", median)
	fmt.Fprintf(w, "Average: %v\n", mean)
	return nil
}

// stats returns the median and mean of times. times is sorted in place.
func stats(times []time.Duration) (median, mean time.Duration) {
	if len(times) == 0 {
		return 0, 0
	}
	slices.Sort(times)

	mid := len(times) / 2
	if len(times)%2 == 0 {
		median = (times[mid-1] + times[mid]) / 2
	} else {
		median = times[mid]
	}

	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	return median, sum / time.Duration(len(times))
}
