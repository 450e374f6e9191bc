// snugview is a small REPL for poking at a fixed-capacity index.
//
// Usage:
//
//	snugview                  # empty index, default order
//	snugview -order 32        # 32-key index
//	snugview -seed 10         # pre-fill with 10 generated pairs
//
// Commands:
//
//	set <key> <val>  insert or update a pair
//	get <key>        look up a key
//	del <key>        remove a key
//	iter             print all pairs in key order
//	len              print pair count
//	clear            drop everything
//	help             print this list
//	exit             quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"

	"github.com/snugcap/snug/index"
)

var (
	keyColor = color.New(color.FgCyan)
	valColor = color.New(color.FgGreen)
	errColor = color.New(color.FgRed)
)

func main() {
	orderFlag := flag.Int("order", 16, "index order (max keys)")
	seedFlag := flag.Int("seed", 0, "pre-fill with generated pairs")
	flag.Parse()

	idx := index.New[string, string](*orderFlag)
	seed(idx, *seedFlag)

	fmt.Printf("snug index, order %d (type 'help' for commands)\n", *orderFlag)

	scanner := bufio.NewScanner(os.Stdin)
	prompt()
	for scanner.Scan() {
		if !process(idx, scanner.Text()) {
			return
		}
		prompt()
	}
}

func prompt() {
	fmt.Print("> ")
}

func seed(idx *index.Index[string, string], n int) {
	for range n {
		if _, _, err := idx.Insert(faker.Word(), faker.Word()); err != nil {
			errColor.Printf("seed stopped: %v\n", err)
			return
		}
	}
}

func process(idx *index.Index[string, string], line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "set":
		if len(fields) != 3 {
			fmt.Println("usage: set <key> <val>")
			return true
		}
		old, replaced, err := idx.Insert(fields[1], fields[2])
		switch {
		case err != nil:
			errColor.Printf("set: %v\n", err)
		case replaced:
			fmt.Printf("replaced %s\n", valColor.Sprint(old))
		default:
			fmt.Println("ok")
		}

	case "get":
		if len(fields) != 2 {
			fmt.Println("usage: get <key>")
			return true
		}
		if val, found := idx.Get(fields[1]); found {
			valColor.Println(val)
		} else {
			fmt.Println("(not found)")
		}

	case "del":
		if len(fields) != 2 {
			fmt.Println("usage: del <key>")
			return true
		}
		if val, found := idx.Remove(fields[1]); found {
			fmt.Printf("removed %s\n", valColor.Sprint(val))
		} else {
			fmt.Println("(not found)")
		}

	case "iter":
		for key, val := range idx.Items {
			fmt.Printf("%s: %s\n", keyColor.Sprint(key), valColor.Sprint(val))
		}

	case "len":
		fmt.Println(idx.Len())

	case "clear":
		idx.Clear()
		fmt.Println("ok")

	case "help":
		fmt.Println("commands: set get del iter len clear help exit")

	case "exit", "quit":
		return false

	default:
		errColor.Printf("unknown command %q\n", fields[0])
	}
	return true
}
