// Command generate-fixture prints the deterministic order book fixture and
// its expected total. The output is used to pin golden values in regression
// tests and to inspect what a given seed produces.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/aggbench/internal/order"
)

func main() {
	seed := flag.Int64("seed", order.DefaultSeed, "fixture seed")
	orders := flag.Int("orders", order.DefaultOrderCount, "number of orders")
	verbose := flag.Bool("v", false, "print every order line")
	flag.Parse()

	if *orders < 0 {
		fmt.Fprintln(os.Stderr, "orders must be non-negative")
		os.Exit(1)
	}

	book := order.GenerateBook(*seed, *orders)
	total := oracleSum(book)

	fmt.Printf("seed=%d orders=%d lines=%d total=%d\n", *seed, *orders, countLines(book), total)
	if *verbose {
		for i, o := range book.Orders {
			fmt.Printf("order %3d:", i)
			for _, l := range o.Lines {
				fmt.Printf(" %d", l.Quantity)
			}
			fmt.Println()
		}
	}
}

// oracleSum computes the reference total with plain loops, independent of the
// aggregation variants under test.
func oracleSum(b *order.Book) int {
	total := 0
	for _, o := range b.Orders {
		for _, l := range o.Lines {
			total += l.Quantity
		}
	}
	return total
}

func countLines(b *order.Book) int {
	n := 0
	for _, o := range b.Orders {
		n += len(o.Lines)
	}
	return n
}
