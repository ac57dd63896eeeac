package remarks_test

import (
	"fmt"

	"github.com/walletkit/remarks"
)

func ExampleAggregate() {
	out, err := remarks.Aggregate("testdata/wallets.txt")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// addrA	✅✅foo1 foo2
	// addrB	bar
}

func ExampleProcess() {
	fmt.Println(remarks.Process("testdata/doesntexist.txt"))
	// Output:
	// error: file 'testdata/doesntexist.txt' not found
}

func ExampleEcho() {
	remarks.Echo("x\ttag3\nx\ttag1\nx\ttag2\n").Merge().Stdout()
	// Output:
	// x	✅✅✅tag1 tag2 tag3
}

func ExamplePipe_Rank() {
	remarks.Echo("b\tzzz\na\taaa\nc\t✅✅x1 x2\n").Rank().Stdout()
	// Output:
	// c	✅✅x1 x2
	// a	aaa
	// b	zzz
}

func ExamplePipe_JQ() {
	remarks.Echo(`[{"address":"addrA","markers":2},{"address":"addrB","markers":0}]`).
		JQ(`.[] | select(.markers > 1) | .address`).
		Stdout()
	// Output:
	// "addrA"
}

func ExampleGroup_Entry() {
	g := remarks.Group{Address: "addrC", Labels: []string{"alpha", "beta7"}}
	fmt.Println(g.Entry())
	// Output:
	// addrC	✅✅beta7 alpha
}

func ExampleGroups_Report() {
	g := remarks.NewGroups()
	g.AddLine("addrB\tbar")
	g.AddLine("addrA\tfoo2")
	g.AddLine("not a record")
	g.AddLine("addrA\tfoo1")
	fmt.Println(g.Report())
	fmt.Println(g.Skipped, "skipped")
	// Output:
	// addrA	✅✅foo1 foo2
	// addrB	bar
	// 1 skipped
}
