package main

import (
	"fmt"
	"os"

	"github.com/brimdata/fastin/cmd/fastin/fields"
	"github.com/brimdata/fastin/cmd/fastin/head"
	"github.com/brimdata/fastin/cmd/fastin/pairs"
	"github.com/brimdata/fastin/cmd/fastin/root"
	"github.com/brimdata/fastin/cmd/fastin/stats"
	"github.com/brimdata/fastin/cmd/fastin/sum"
	"github.com/brimdata/fastin/pkg/charm"
)

func main() {
	fastin := root.Fastin
	fastin.Add(charm.Help)
	fastin.Add(fields.Cmd)
	fastin.Add(head.Cmd)
	fastin.Add(pairs.Cmd)
	fastin.Add(stats.Cmd)
	fastin.Add(sum.Cmd)
	if err := fastin.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
