package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kherio/karnaugh/kmap"
)

func main() {
	var (
		pos   bool
		quiet bool
	)
	flag.BoolVar(&pos, "pos", false, "produces the product-of-sums form rather than sum-of-products")
	flag.BoolVar(&quiet, "quiet", false, "prints the formula only, without the map summary")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] file.tt\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Args()[0]
	m := kmap.FromFile(path)
	if !quiet {
		fmt.Printf("c minimizing %s\n", path)
		fmt.Printf("c map size %dx%d\n", m.SizeX(), m.SizeY())
	}
	if pos {
		fmt.Println(m.POS())
	} else {
		fmt.Println(m.SOP())
	}
}
