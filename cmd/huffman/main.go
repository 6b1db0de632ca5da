// Command huffman compresses text files into .ckf archives and back.
//
//	huffman [-v] compress [-out dir] [-reject-single] file.txt
//	huffman [-v] decompress [-out dir] file.ckf
//	huffman [-v] inspect file.ckf
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Kasrabzm/Huffman-algorithm-text-compression/archive"
	"github.com/Kasrabzm/Huffman-algorithm-text-compression/huffman"
)

func main() {
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Args(), logger); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] compress|decompress|inspect [flags] file\n", os.Args[0])
	flag.PrintDefaults()
}

func run(args []string, logger *slog.Logger) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	cmd := flag.NewFlagSet(args[0], flag.ContinueOnError)
	outputDir := cmd.String("out", "", "directory for the output (default: next to the input)")
	rejectSingle := cmd.Bool("reject-single", false, "fail on text made of a single repeated symbol")
	if err := cmd.Parse(args[1:]); err != nil {
		return err
	}
	if cmd.NArg() != 1 {
		return fmt.Errorf("%s: expected exactly one file, got %d", args[0], cmd.NArg())
	}
	input := cmd.Arg(0)

	opts := archive.Options{
		OutputDir: *outputDir,
		Logger:    logger,
	}
	if *rejectSingle {
		opts.SingleSymbol = huffman.RejectSingleSymbol
	}
	c := archive.New(opts)

	switch args[0] {
	case "compress":
		output, err := c.Compress(input)
		if err != nil {
			return err
		}
		fmt.Println(output)

	case "decompress":
		output, err := c.Decompress(input)
		if err != nil {
			return err
		}
		fmt.Println(output)

	case "inspect":
		report, err := c.Inspect(input)
		if err != nil {
			return err
		}
		data, err := report.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
