// dist evaluates a probability distribution over a selected range and
// prints its density or mass function and how much of its probability
// falls inside the range.
//
// For example,
//
//	dist -dist normal -param mean=0 -param stddev=1 -min -1 -max 1
//
// Settings may also come from DIST_* environment variables or a YAML
// file given with -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-distrange/stats"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dist: ")

	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	req, err := cfg.Request()
	if err == nil {
		err = run(os.Stdout, req)
	}
	if err != nil {
		var verr *stats.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				log.Print(p)
			}
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(w io.Writer, req Request) error {
	c, s, err := req.Evaluator.Evaluate(req.Model, req.Range)
	if err != nil {
		return err
	}
	exact, err := stats.Exact(req.Model, req.Range)
	if err != nil {
		return err
	}

	FprintModel(w, req.Model)
	fmt.Fprintln(w)
	if req.Curve {
		FprintCurve(w, c, req.Range)
		fmt.Fprintln(w)
	}
	FprintSplit(w, fmt.Sprintf("%s Distribution %v", req.Model.Kind().Title(), req.Range), s)
	fmt.Fprintf(w, "  exact: in range %.6g, out of range %.6g\n", exact.InRange, exact.OutOfRange)
	if a := s.Advisory(); a != stats.NoAdvisory {
		fmt.Fprintln(w)
		fmt.Fprintln(w, a)
	}
	return nil
}
