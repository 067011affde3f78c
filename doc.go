/*
Package sequencer computes arithmetic and geometric sequences and renders them for display.

It separates the numeric core (package pkg/sequence) from presentation (package pkg/format),
and ties them together in Calculate, which produces a Report that every host renders the same
way: the interactive terminal form, the one-shot CLI, the HTTP form and JSON API, and the MCP tool.

# Concept

A calculation is a single stateless request/response. A sequence.Request names the kind
(Arithmetic or Geometric), the first term, the step (common difference or common ratio) and
the number of terms (1 to 1000). Calculate validates the request, generates the terms and
returns a Report with the term list, the general formula, the last term, the sum and the
derivation of the first three terms.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/sequencer"
		"github.com/aretw0/sequencer/pkg/sequence"
	)

	func main() {
		report, err := sequencer.Calculate(sequence.Geom(2, 2, 5))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(report.Formula)   // a_n = 2 × 2^(n-1)
		fmt.Println(report.TermsText) // 2, 4, 8, 16, 32
		fmt.Println(report.SumText)   // 62.00
	}
*/
package sequencer
