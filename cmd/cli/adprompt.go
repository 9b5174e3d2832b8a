package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klozestickers/credits/internal/ads"
)

// promptAd stands in for an ad SDK on the terminal: the ad "completes" when
// the user confirms before the deadline.
type promptAd struct {
	in     io.Reader
	out    io.Writer
	reward int64
}

func (p promptAd) Prepare(context.Context) error {
	fmt.Fprintln(p.out, "Loading ad...")
	return nil
}

func (p promptAd) Show(ctx context.Context) (*ads.Reward, error) {
	fmt.Fprint(p.out, "Watch the ad, then type 'done' and press Enter (anything else skips): ")
	line := make(chan string, 1)
	go func() {
		s, _ := bufio.NewReader(p.in).ReadString('\n')
		line <- s
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return nil, ctx.Err()
	case s := <-line:
		if strings.TrimSpace(s) == "done" {
			return &ads.Reward{Amount: p.reward, Type: "credits"}, nil
		}
		return nil, nil
	}
}
