package panner_test

import (
	"fmt"

	"github.com/briarcliff-audio/admpanner/geom"
	"github.com/briarcliff-audio/admpanner/layout"
	"github.com/briarcliff-audio/admpanner/panner"
)

func Example() {
	l, err := layout.BS2051("0+5+0")
	if err != nil {
		panic(err)
	}

	p, err := panner.Configure(l.WithoutLFE())
	if err != nil {
		panic(err)
	}

	gains, ok := p.Handle(geom.CartesianFromPolar(30, 0, 1))
	if !ok {
		panic("direction not claimed by any region")
	}

	fmt.Printf("%.4f\n", gains[0])
	// Output: 1.0000
}
