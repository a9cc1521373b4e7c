// Package main provides the reverse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/reverse-ml/reverse/autodiff"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("reverse %s\n", version)
			return
		case "demo":
			runDemo()
			return
		}
	}

	fmt.Println("reverse - Reverse-Mode Automatic Differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a sample expression")
	fmt.Println("")
	fmt.Println("Library usage: import \"github.com/reverse-ml/reverse/autodiff\"")
}

// demoGradients differentiates y = (a/b - a)·(b/a + a + b)·(a - b) and
// returns the value of y and its gradient with respect to a and b.
func demoGradients(av, bv float64) (y, dyda, dydb float64) {
	tape := autodiff.NewTape()
	a := tape.AddVar(av)
	b := tape.AddVar(bv)

	res := a.Div(b).Sub(a).
		Mul(b.Div(a).Add(a).Add(b)).
		Mul(a.Sub(b))
	grads := res.Grad()
	return res.Value(), grads.Wrt(a), grads.Wrt(b)
}

func runDemo() {
	const av, bv = 230.3, 33.2
	y, dyda, dydb := demoGradients(av, bv)

	fmt.Println("y = (a/b - a) * (b/a + a + b) * (a - b)")
	fmt.Printf("at a=%v, b=%v:\n", av, bv)
	fmt.Printf("  y     = %.6f\n", y)
	fmt.Printf("  dy/da = %.6f\n", dyda)
	fmt.Printf("  dy/db = %.6f\n", dydb)
}
