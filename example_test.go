package stringart_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stringart"
	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/pins"
)

// ExampleNew winds three greedy lines across a dark image.
func ExampleNew() {
	img, _ := canvas.NewGray(21, 21) // all black
	set, _ := pins.Generate(4, 21, 21)

	s, _ := stringart.New("greedy", stringart.Params{MaxLines: 3})
	events, _ := s.Run(context.Background(), img, set)
	for ev := range events {
		fmt.Println(ev.Status, ev.Segment)
	}
	// Output:
	// Drawing line 1/3 0->2
	// Drawing line 2/3 2->0
	// Drawing line 3/3 0->2
}
