package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Stream is a deterministic replay of a pre-recorded integer sequence,
// wrapping back to position 0 once exhausted. It implements
// pager.Source.
type Stream struct {
	nums []int
	ofs  int
}

// Next returns the stream's current value and advances the offset,
// wrapping modulo the stream length.
func (s *Stream) Next() int {
	v := s.nums[s.ofs]
	s.ofs = (s.ofs + 1) % len(s.nums)
	return v
}

// ReadRandom parses the random number file: a leading count K followed
// by K whitespace-separated integers.
func ReadRandom(r io.Reader) (*Stream, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, fmt.Errorf("input: random file missing count")
	}
	count, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("input: random file count %q: %w", sc.Text(), err)
	}
	if count <= 0 {
		return nil, fmt.Errorf("input: random file count must be positive, got %d", count)
	}

	nums := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("input: random file expected %d numbers, got %d", count, i)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("input: random file value %q: %w", sc.Text(), err)
		}
		nums = append(nums, v)
	}

	return &Stream{nums: nums}, nil
}
