package index_test

import (
	"fmt"

	"github.com/snugcap/snug/index"
)

func Example() {
	idx := index.New[string, string](8)

	idx.Insert("apple", "red")
	idx.Insert("banana", "yellow")
	idx.Insert("cherry", "red")

	val, found := idx.Get("banana")
	fmt.Printf("banana: %s (found: %v)\n", val, found)

	// pairs come out in ascending key order
	for key, val := range idx.Items {
		fmt.Printf("%s: %s\n", key, val)
	}

	idx.Clear()
	fmt.Printf("empty after clear: %v\n", idx.Empty())

	// Output:
	// banana: yellow (found: true)
	// apple: red
	// banana: yellow
	// cherry: red
	// empty after clear: true
}

func ExampleIndex_Insert() {
	idx := index.New[int, string](2)

	idx.Insert(1, "one")
	idx.Insert(2, "two")

	// the leaf run is full now
	_, _, err := idx.Insert(3, "three")
	fmt.Println(err)

	// updating an existing key is still fine
	old, replaced, _ := idx.Insert(2, "deux")
	fmt.Println(old, replaced)

	// Output:
	// full
	// two true
}
