// Command underscore applies a deferred expression to a stream of input
// values. Input comes from YAML documents (file or stdin) or from SQLite
// rows, each of which becomes the placeholder value:
//
//	echo '5' | underscore '_ * 2 + 1'
//	underscore '_.name.upper()' people.yaml
//	underscore -db app.db -query 'SELECT name, age FROM users' '_["age"] >= 18'
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/funvibe/underscore/internal/expr"
	"github.com/funvibe/underscore/internal/object"
	"github.com/funvibe/underscore/internal/parser"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

type runConfig struct {
	exprSrc string
	input   string
	dbPath  string
	query   string
	verbose bool
	noColor bool
}

func main() {
	cfg := parseFlags()

	node, err := parser.Parse(cfg.exprSrc)
	if err != nil {
		fatal(cfg, "parse error: %v", err)
	}

	if cfg.verbose {
		fmt.Fprintf(os.Stderr, "run %s: %s\n", uuid.NewString(), node.String())
	}

	var inputs []object.Object
	if cfg.dbPath != "" {
		inputs, err = readRows(cfg.dbPath, cfg.query)
	} else {
		inputs, err = readYAML(cfg.input)
	}
	if err != nil {
		fatal(cfg, "%v", err)
	}

	start := time.Now()
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()

	failed := false
	for _, input := range inputs {
		result, err := expr.Evaluate(node, input)
		if err != nil {
			failed = true
			fmt.Fprintln(os.Stderr, colorize(cfg, colorRed, fmt.Sprintf("error: %v", err)))
			continue
		}
		if err := encodeResult(enc, result); err != nil {
			fatal(cfg, "encode result: %v", err)
		}
	}

	if cfg.verbose {
		fmt.Fprintf(os.Stderr, "%d values in %s\n", len(inputs), time.Since(start))
	}
	if failed {
		os.Exit(1)
	}
}

func parseFlags() runConfig {
	var cfg runConfig
	flag.StringVar(&cfg.dbPath, "db", "", "SQLite database to read rows from")
	flag.StringVar(&cfg.query, "query", "", "SQL query producing input rows (requires -db)")
	flag.BoolVar(&cfg.verbose, "v", false, "print run id, parsed expression and timing to stderr")
	flag.BoolVar(&cfg.noColor, "no-color", false, "disable colored error output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] EXPR [input.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.exprSrc = args[0]
	if len(args) > 1 {
		cfg.input = args[1]
	}
	if cfg.dbPath != "" && cfg.query == "" {
		fatal(cfg, "-db requires -query")
	}
	return cfg
}

// readYAML decodes every document from the file (or stdin when path is
// empty). A top-level sequence is unrolled: the expression is applied per
// element, matching per-row behavior on the SQL side.
func readYAML(path string) ([]object.Object, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var inputs []object.Object
	dec := yaml.NewDecoder(r)
	for {
		var doc interface{}
		if err := dec.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("YAML parse error: %v", err)
		}
		if seq, ok := doc.([]interface{}); ok {
			for _, item := range seq {
				inputs = append(inputs, object.FromGo(item))
			}
			continue
		}
		inputs = append(inputs, object.FromGo(doc))
	}
	return inputs, nil
}

// readRows runs the query and converts each row into a record keyed by
// column name, preserving column order.
func readRows(path, query string) ([]object.Object, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query: %v", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var inputs []object.Object
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %v", err)
		}
		values := make([]object.Object, len(cols))
		for i, v := range raw {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			values[i] = object.FromGo(v)
		}
		inputs = append(inputs, object.NewRecordOrdered(cols, values))
	}
	return inputs, rows.Err()
}

func encodeResult(enc *yaml.Encoder, result object.Object) error {
	val := object.ToGo(result)
	if _, ok := result.(*object.Host); ok {
		// Host values may not round-trip through YAML; show them instead.
		val = result.Inspect()
	}
	return enc.Encode(val)
}

func colorize(cfg runConfig, color, s string) string {
	if cfg.noColor || !isatty.IsTerminal(os.Stderr.Fd()) {
		return s
	}
	return color + s + colorReset
}

func fatal(cfg runConfig, format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, colorize(cfg, colorRed, fmt.Sprintf(format, a...)))
	os.Exit(1)
}
