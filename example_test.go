package cliff_test

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bjaus/cliff"
)

// printTrimmed drops the trailing column gap so the output reads cleanly.
func printTrimmed(block string) {
	for line := range strings.SplitSeq(block, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
}

func ExampleFormatRows() {
	rows := [][]any{
		{"Name", "Flavor", "Dessert"},
		{"Alice", "cherry", regexp.MustCompile(`^aa`)},
		{"Bob", "carmel", cliff.Undefined},
		{"Joe", "chocolate", nil},
		{"Nick", "vanilla", 111},
	}
	printTrimmed(cliff.FormatRows(rows, nil))
	// Output:
	// Name  Flavor    Dessert
	// Alice cherry    ^aa
	// Bob   carmel    undefined
	// Joe   chocolate null
	// Nick  vanilla   111
}

func ExampleFormatRecords() {
	type place struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	records := []place{
		{ID: "1", Name: "bazz", Address: "1234 Nowhere Dr."},
		{ID: "22", Name: "bazz", Address: "1234 Nowhere Dr."},
	}
	out := cliff.FormatRecords(records, []string{"id", "name", "address"}, []string{"red", "blue", "green"},
		cliff.WithStyler(cliff.NewTheme(cliff.ColorNever)))
	printTrimmed(out)
	// Output:
	// id name address
	// 1  bazz 1234 Nowhere Dr.
	// 22 bazz 1234 Nowhere Dr.
}

func ExampleInspect() {
	in := cliff.Inspector{Styler: cliff.NewTheme(cliff.ColorNever)}
	fmt.Println(in.Inspect(map[string]any{"id": 1, "tags": []string{"a", "b"}}, "record"))
	// Output:
	// record: { id: 1, tags: [ 'a', 'b' ] }
}
