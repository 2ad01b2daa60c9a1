package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/qiniu/x/log"

	"github.com/zephyrtronium/plotfn"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

var jsonAPI = jsoniter.Config{EscapeHTML: true, SortMapKeys: true}.Froze()

// run runs the command and returns the exit status.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	var (
		inname, confname string
		at               []float64
		json, echo, v    bool
	)
	fs := flag.NewFlagSet("plotfn", flag.ContinueOnError)
	fs.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	fs.StringVar(&confname, "config", "", "TOML config file")
	fs.Func("at", "comma-separated x values to evaluate at instead of sampling", func(s string) error {
		p, err := parsePoints(s)
		at = append(at, p...)
		return err
	})
	fs.String("fmt", "%g", "number formatting verb for text output")
	fs.Float64("min", 0, "window minimum")
	fs.Float64("max", 0, "window maximum")
	fs.Float64("step", 0, "sample step")
	fs.Bool("rightpow", false, "parse ** as right-associative")
	fs.BoolVar(&json, "json", false, "write JSON output")
	fs.BoolVar(&echo, "echo", false, "print parse trees")
	fs.BoolVar(&v, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	conf, err := loadConfig(confname)
	if err != nil {
		log.Error(err)
		return 2
	}
	override(&conf, fs)
	if json {
		conf.Format = formatJSON
	}
	if v {
		conf.LogLevel = log.Ldebug
	}
	log.SetOutputLevel(conf.LogLevel)
	if err := conf.validate(); err != nil {
		log.Error(err)
		return 2
	}
	log.Debugf("config: %+v", conf)

	srcs := fs.Args()
	if inname != "" || len(srcs) == 0 {
		lines, err := readLines(inname, stdin)
		if err != nil {
			log.Error(err)
			return 1
		}
		srcs = append(lines, srcs...)
	}

	status := 0
	w := bufio.NewWriter(stdout)
	defer w.Flush()
	opts := conf.parseOptions()
	for _, src := range srcs {
		r := result{Expr: src}
		a, err := plotfn.Parse(src, opts...)
		if err != nil {
			log.Errorf("%q: %v", src, err)
			status = 1
			if conf.Format == formatJSON {
				r.Error = err.Error()
				if err := writeJSON(w, &r); err != nil {
					log.Error(err)
					return 1
				}
			}
			continue
		}
		r.Expr = a.String()
		log.Debugf("parsed %q as %s, depth %d, size %d", src, a, a.Depth(), a.Size())
		if echo && conf.Format == formatText {
			fmt.Fprintf(w, "%v : depth %d, size %d\n", a, a.Depth(), a.Size())
		}
		if len(at) != 0 {
			r.Values = evalAt(a, at)
		} else {
			r.Segments, err = a.Sample(conf.Window)
			if err != nil {
				// The window was validated already.
				log.Errorf("sampling %v: %v", a, err)
				return 1
			}
			log.Debugf("%v: %d segments", a, len(r.Segments))
		}
		if conf.Format == formatJSON {
			err = writeJSON(w, &r)
		} else {
			err = writeText(w, conf.Verb, &r)
		}
		if err != nil {
			log.Error(err)
			return 1
		}
	}
	if err := w.Flush(); err != nil {
		log.Error(errors.Wrap(err, "writing output"))
		return 1
	}
	return status
}

// result is the output for one expression.
type result struct {
	Expr     string           `json:"expr"`
	Error    string           `json:"error,omitempty"`
	Segments []plotfn.Segment `json:"segments,omitempty"`
	Values   []value          `json:"values,omitempty"`
}

// value is the result of evaluating at one point. Exactly one of Y and Error
// is set.
type value struct {
	X     float64  `json:"x"`
	Y     *float64 `json:"y,omitempty"`
	Error string   `json:"error,omitempty"`
}

func evalAt(a *plotfn.Expr, at []float64) []value {
	r := make([]value, 0, len(at))
	for _, x := range at {
		y, err := a.Eval(x)
		switch {
		case err != nil:
			r = append(r, value{X: x, Error: err.Error()})
		case math.IsInf(y, 0) || math.IsNaN(y):
			r = append(r, value{X: x, Error: "result " + strconv.FormatFloat(y, 'g', -1, 64) + " is not finite"})
		default:
			y := y
			r = append(r, value{X: x, Y: &y})
		}
	}
	return r
}

// writeText writes a result as tab-separated x and y columns. Segments are
// separated by blank lines.
func writeText(w io.Writer, verb string, r *result) error {
	line := verb + "\t" + verb + "\n"
	for _, v := range r.Values {
		var err error
		if v.Y == nil {
			_, err = fmt.Fprintf(w, verb+"\t%s\n", v.X, v.Error)
		} else {
			_, err = fmt.Fprintf(w, line, v.X, *v.Y)
		}
		if err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	for i, s := range r.Segments {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Wrap(err, "writing output")
			}
		}
		for _, p := range s {
			if _, err := fmt.Fprintf(w, line, p.X, p.Y); err != nil {
				return errors.Wrap(err, "writing output")
			}
		}
	}
	return nil
}

// writeJSON writes a result as one line of JSON.
func writeJSON(w io.Writer, r *result) error {
	return errors.Wrap(jsonAPI.NewEncoder(w).Encode(r), "encoding result")
}

// override applies the flags that were set on the command line.
func override(conf *Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch f.Name {
		case "fmt":
			conf.Verb = g.Get().(string)
		case "min":
			conf.Window.Min = g.Get().(float64)
		case "max":
			conf.Window.Max = g.Get().(float64)
		case "step":
			conf.Window.Step = g.Get().(float64)
		case "rightpow":
			conf.RightAssocPow = g.Get().(bool)
		}
	})
}

func parsePoints(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	r := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad point %q", p)
		}
		r = append(r, x)
	}
	return r, nil
}

// readLines reads non-blank lines from the named file, or from stdin if the
// name is empty or "-".
func readLines(name string, stdin io.Reader) ([]string, error) {
	in := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	var r []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			r = append(r, line)
		}
	}
	return r, errors.Wrap(sc.Err(), "reading input")
}
