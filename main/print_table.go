package main

import (
	"flag"
	"fmt"

	"github.com/sw965/redblack/solver"
)

func main() {
	black := flag.Int("black", 20, "黒カードの総枚数")
	red := flag.Int("red", 20, "赤カードの総枚数")
	flag.Parse()

	table, err := solver.New(*black, *red)
	if err != nil {
		panic(err)
	}

	fmt.Print(table.Render())

	if *black > 0 && *red > 0 {
		v, err := table.Lookup(*black, *red)
		if err != nil {
			panic(err)
		}
		fmt.Printf("初期状態(黒%d枚, 赤%d枚)の期待値: %f\n", *black, *red, v)
	}
}
