package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	eel "github.com/projectM-visualizer/projectm-eval"
)

func main() {
	var (
		exprPath = flag.String("expr", "", "Path to a file with expression code (default: stdin)")
		treeOnly = flag.Bool("tree-only", false, "Only print the compiled tree, don't execute it")
		setVars  = flag.Bool("print-vars", false, "Print every resolved variable after execution")
	)
	flag.Parse()

	var (
		data []byte
		err  error
	)
	if *exprPath == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*exprPath)
	}
	if err != nil {
		log.Fatalf("can't read expression: %s", err.Error())
	}

	ctx := eel.NewContext(nil)
	program, err := ctx.Compile(string(data))
	if err != nil {
		log.Fatalf("compile error: %s", err.Error())
	}

	if *treeOnly {
		printTree(program.Root(), 0)
		return
	}

	result := program.Execute()
	fmt.Printf("%v\n", result)

	if *setVars {
		for name, v := range ctx.Variables() {
			fmt.Printf("%s = %v\n", name, v)
		}
	}
}

func printTree(n *eel.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	if v, ok := n.ConstValue(); ok {
		fmt.Printf("%s%s %v\n", indent, n.NodeKind(), v)
		return
	}
	fmt.Printf("%s%s\n", indent, n.NodeKind())
	for _, a := range n.Args() {
		printTree(a, depth+1)
	}
}
