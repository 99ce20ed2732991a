package utils

import (
	"bufio"
	"math/rand"
	"os"
)

// ReadTextFile slurps a whole file as a string, preserving line breaks.
// Used for shader sources.
func ReadTextFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var body string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		body += scanner.Text() + "\n"
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return body, nil
}

type Point struct {
	X, Y int
}

// ToIndex flattens the point as X*width + Y, with X as the row
// coordinate and width as the row stride. The heightmap lattices using
// it are square, so the transposed X/Y naming addresses the same cells
// either way; non-square lattices would need Y*stride + X.
func (p Point) ToIndex(width int) int {
	return p.X*width + p.Y
}

func Midpoint(p1, p2 int) int {
	return (p2 + p1) / 2
}

func Average(nums ...float32) float32 {
	var total float32
	var count float32
	for _, num := range nums {
		total += num
		count++
	}
	return total / count
}

// Lerp interpolates linearly between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Jitter shifts value by a uniform random offset in [-scale, scale].
func Jitter(value, scale float32) float32 {
	random := rand.Float32() * scale * 2
	shift := scale - random
	return shift + value
}
