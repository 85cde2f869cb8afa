// Command lexorank generates and inspects ranks from the shell.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/calebcase/lexorank"
)

// CLI defines the command-line interface for lexorank.
var CLI struct {
	Min     MinCmd     `cmd:"" help:"Print the minimum rank."`
	Max     MaxCmd     `cmd:"" help:"Print the maximum rank."`
	Middle  MiddleCmd  `cmd:"" help:"Print the middle rank."`
	Between BetweenCmd `cmd:"" help:"Print a rank between two ranks."`
	Next    NextCmd    `cmd:"" help:"Print a rank after the given rank."`
	Prev    PrevCmd    `cmd:"" help:"Print a rank before the given rank."`
	Parse   ParseCmd   `cmd:"" help:"Validate a rank string and print its canonical form."`
}

type MinCmd struct{}

func (c *MinCmd) Run() error {
	fmt.Println(lexorank.Min())

	return nil
}

type MaxCmd struct{}

func (c *MaxCmd) Run() error {
	fmt.Println(lexorank.Max())

	return nil
}

type MiddleCmd struct{}

func (c *MiddleCmd) Run() error {
	fmt.Println(lexorank.Middle())

	return nil
}

type BetweenCmd struct {
	Prev string `arg:"" optional:"" help:"Rank before the insertion point (empty for none)."`
	Next string `arg:"" optional:"" help:"Rank after the insertion point (empty for none)."`
}

func (c *BetweenCmd) Run() error {
	r, err := lexorank.CalculateBetween(c.Prev, c.Next)
	if err != nil {
		return err
	}

	fmt.Println(r)

	return nil
}

type NextCmd struct {
	Rank string `arg:"" help:"Existing rank."`
}

func (c *NextCmd) Run() error {
	r, err := lexorank.Parse(c.Rank)
	if err != nil {
		return err
	}

	n, err := r.GenNext()
	if err != nil {
		return err
	}

	fmt.Println(n)

	return nil
}

type PrevCmd struct {
	Rank string `arg:"" help:"Existing rank."`
}

func (c *PrevCmd) Run() error {
	r, err := lexorank.Parse(c.Rank)
	if err != nil {
		return err
	}

	p, err := r.GenPrev()
	if err != nil {
		return err
	}

	fmt.Println(p)

	return nil
}

type ParseCmd struct {
	Rank string `arg:"" help:"Rank string to validate."`
}

func (c *ParseCmd) Run() error {
	r, err := lexorank.Parse(c.Rank)
	if err != nil {
		return err
	}

	fmt.Println(r)

	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lexorank"),
		kong.Description("Generate lexicographically sortable ranks for ordered collections."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
