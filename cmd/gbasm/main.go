// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/gbasm/config"
	"github.com/ezrec/gbasm/functions"
	"github.com/ezrec/gbasm/gameboy"
	"github.com/ezrec/gbasm/memory"
	"github.com/ezrec/gbasm/translate"
)

// complete is set once the output has been fully written.
var complete bool

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func main() {
	var configPath string
	var output string
	var verbose bool
	var lang string

	flag.StringVar(&configPath, "c", "", ".yaml build configuration")
	flag.StringVar(&output, "o", "-", "Assembly output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "l", "", "Message locale, such as fr-FR")

	flag.Parse()

	if flag.NArg() != 0 {
		fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLocales(lang)
	}

	cfg := config.Default()
	if len(configPath) != 0 {
		var err error
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			fatalf("%v: %v", configPath, err)
		}
	}

	registry := functions.NewRegistry()
	registry.Verbose = verbose
	alloc := memory.NewAllocator()
	alloc.Verbose = verbose

	b := gameboy.NewBuilder(registry, alloc)
	b.Verbose = verbose

	err := cfg.Apply(b)
	if err != nil {
		fatalf("%v", err)
	}

	err = breakout(b)
	if err != nil {
		fatalf("breakout: %v", err)
	}

	program, err := b.Assemble()
	if err != nil {
		fatalf("breakout: %v", err)
	}

	if verbose {
		fmt.Fprint(os.Stderr, alloc.Usage())
	}

	if output == "-" {
		_, err = program.WriteTo(os.Stdout)
		if err != nil {
			fatalf("%v: %v", output, err)
		}
		atexit.Exit(0)
	}

	ouf, err := os.Create(output)
	if err != nil {
		fatalf("%v: %v", output, err)
	}

	atexit.Register(func() {
		if !complete {
			ouf.Close()
			os.Remove(output)
		}
	})

	err = emit(program, ouf)
	if err != nil {
		fatalf("%v: %v", output, err)
	}

	complete = true
	atexit.Exit(0)
}

// emit writes the program and closes the output, reporting a failed close.
func emit(program io.WriterTo, ouf io.WriteCloser) (err error) {
	_, err = program.WriteTo(ouf)
	if err != nil {
		ouf.Close()
		return
	}

	return ouf.Close()
}
