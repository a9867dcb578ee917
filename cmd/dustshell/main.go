// dustshell is an interactive REPL for loading a slice of integers,
// sorting it with dustsort, and inspecting the result — a debugging aid
// for the sort algorithm, not a production tool.
//
// Commands:
//
//	load <n1> <n2> ...   Load a slice of integers
//	random <n> [seed]    Load a random slice of n integers
//	sort                 Sort the loaded slice with dustsort
//	show                 Print the current slice
//	compares             Print the comparator call count of the last sort
//	verify               Check the current slice is sorted
//	help                 Show this help
//	exit / quit / q      Exit
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/bzyjin/dustsort"
	"github.com/bzyjin/dustsort/internal/propcheck"
)

type repl struct {
	liner    *liner.State
	current  []int
	compares int
}

func newREPL() *repl {
	return &repl{liner: liner.NewLiner()}
}

func (r *repl) completer(line string) []string {
	cmds := []string{"load", "random", "sort", "show", "compares", "verify", "help", "exit", "quit"}
	var out []string
	for _, c := range cmds {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

func (r *repl) run() {
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	fmt.Println("dustshell — type 'help' for commands")

	for {
		line, err := r.liner.Prompt("dustshell> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return
			}
			fmt.Fprintf(os.Stderr, "dustshell: %v\n", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		if r.dispatch(line) {
			return
		}
	}
}

// dispatch executes one REPL line and reports whether the REPL should exit.
func (r *repl) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "exit", "quit", "q":
		return true

	case "help":
		fmt.Println("load <n1> <n2> ...   load a slice of integers")
		fmt.Println("random <n> [seed]    load a random slice of n integers")
		fmt.Println("sort                 sort the loaded slice with dustsort")
		fmt.Println("show                 print the current slice")
		fmt.Println("compares             print the comparator call count of the last sort")
		fmt.Println("verify               check the current slice is sorted")
		fmt.Println("exit / quit / q      exit")

	case "load":
		v := make([]int, 0, len(args))
		for _, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				fmt.Fprintf(os.Stderr, "dustshell: invalid integer %q\n", a)
				return false
			}
			v = append(v, n)
		}
		r.current = v
		fmt.Printf("loaded %d elements\n", len(v))

	case "random":
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "dustshell: random requires a count")
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			fmt.Fprintln(os.Stderr, "dustshell: invalid count")
			return false
		}
		var seed uint64 = 1
		if len(args) > 1 {
			s, err := strconv.ParseUint(args[1], 10, 64)
			if err == nil {
				seed = s
			}
		}
		rnd := rand.New(rand.NewPCG(seed, seed))
		v := make([]int, n)
		for i := range v {
			v[i] = rnd.IntN(n + 1)
		}
		r.current = v
		fmt.Printf("loaded %d random elements (seed=%d)\n", n, seed)

	case "sort":
		c := propcheck.Counting[int]{Less: func(a, b int) bool { return a < b }}
		dustsort.SortFunc(r.current, c.Lt)
		r.compares = c.Count
		fmt.Printf("sorted %d elements in %d comparisons\n", len(r.current), r.compares)

	case "show":
		fmt.Println(r.current)

	case "compares":
		fmt.Println(r.compares)

	case "verify":
		ok := propcheck.IsSorted(r.current, func(a, b int) bool { return a < b })
		fmt.Println(ok)

	default:
		fmt.Fprintf(os.Stderr, "dustshell: unknown command %q (try 'help')\n", cmd)
	}

	return false
}

func main() {
	newREPL().run()
}
