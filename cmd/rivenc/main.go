// rivenc - .riv file compiler and inspector
//
// Usage:
//
//	rivenc compile [--file-id N] [file]   Compile a scene description to .riv on stdout
//	rivenc parse [file]                   Parse a .riv file and print its header
//	rivenc validate [file]                Validate a .riv file and print diagnostics
//	rivenc inspect [--type N] [--property N] [--json] [file]
//	                                       Dump a .riv file's objects
//	rivenc version                        Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rive-tools/rivenc/inspect"
	"github.com/rive-tools/rivenc/riv"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "compile":
		runCompile(args)
	case "parse":
		runParse(args)
	case "validate":
		runValidate(args)
	case "inspect":
		runInspect(args)
	case "version":
		fmt.Printf("rivenc %s (riv format %d.%d)\n", version, riv.MajorVersion, riv.MinorVersion)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: rivenc <compile|parse|validate|inspect|version> [flags] [file]")
}

// parsedArgs is rest split into a positional file path, flags that take
// a value (e.g. --file-id 42), and bare boolean flags (e.g. --json).
type parsedArgs struct {
	path   string
	values map[string]string
	bools  map[string]bool
}

// parseArgs walks rest once, consuming the token after any flag named
// in valueFlags as that flag's value so it never gets mistaken for the
// positional path.
func parseArgs(rest []string, valueFlags map[string]bool) parsedArgs {
	out := parsedArgs{values: map[string]string{}, bools: map[string]bool{}}
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if len(a) == 0 || a[0] != '-' {
			out.path = a
			continue
		}
		if valueFlags[a] {
			if i+1 < len(rest) {
				out.values[a] = rest[i+1]
				i++
			}
			continue
		}
		out.bools[a] = true
	}
	return out
}

func readInput(path string) []byte {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal("read stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read %s: %v", path, err)
	}
	return data
}

func runCompile(args []string) {
	parsed := parseArgs(args, map[string]bool{"--file-id": true})
	data := readInput(parsed.path)

	cfg := riv.DefaultConfig()
	if raw, ok := parsed.values["--file-id"]; ok {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			fatal("--file-id: %v", err)
		}
		cfg.FileID = &id
	}

	out, err := riv.Compile(data, cfg)
	if err != nil {
		fatal("compile: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fatal("write output: %v", err)
	}
}

func runParse(args []string) {
	parsed := parseArgs(args, nil)
	data := readInput(parsed.path)
	file, err := riv.Parse(data)
	if err != nil {
		fatal("parse: %v", err)
	}
	fmt.Printf("version=%d.%d file_id=%d objects=%d\n", file.MajorVersion, file.MinorVersion, file.FileID, len(file.Objects))
}

func runValidate(args []string) {
	parsed := parseArgs(args, nil)
	data := readInput(parsed.path)
	file, diags, err := riv.Validate(data)
	if err != nil {
		fatal("validate: %v", err)
	}
	fmt.Printf("objects=%d diagnostics=%d\n", len(file.Objects), len(diags))
	for _, d := range diags {
		fmt.Printf("  object %d: %s\n", d.Object, d.Message)
	}
	if len(diags) > 0 {
		os.Exit(1)
	}
}

func runInspect(args []string) {
	parsed := parseArgs(args, map[string]bool{"--type": true, "--property": true})
	data := readInput(parsed.path)
	file, err := riv.Parse(data)
	if err != nil {
		fatal("parse: %v", err)
	}

	var filter inspect.Filter
	if raw, ok := parsed.values["--type"]; ok {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			fatal("--type: %v", err)
		}
		tk := riv.TypeKey(v)
		filter.TypeKey = &tk
	}
	if raw, ok := parsed.values["--property"]; ok {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			fatal("--property: %v", err)
		}
		pk := riv.PropertyKey(v)
		filter.PropertyKey = &pk
	}

	if parsed.bools["--json"] {
		out, err := inspect.JSON(file, filter)
		if err != nil {
			fatal("inspect: %v", err)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Println(inspect.Table(file, filter))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rivenc: "+format+"\n", args...)
	os.Exit(1)
}
