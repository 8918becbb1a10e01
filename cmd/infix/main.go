package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goarith/infix"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		verb   string
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flag.Parse()

	verb += "\n"
	for _, arg := range flag.Args() {
		eval(arg, verb)
	}
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f == nil {
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			eval(line, verb)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func eval(src, verb string) {
	r, err := infix.Eval(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf(verb, r)
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
