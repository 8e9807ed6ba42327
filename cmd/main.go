package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"zfactor"
	"zfactor/debug"
	"zfactor/quickstart"
	"zfactor/solver"
	"zfactor/types"
)

const usage = `Usage:
  zfactor calc [options]        compute the gas compressibility factor
  zfactor quickstart [options]  plot Z against Pr for a ladder of Tr

Run "zfactor <command> -h" for the options of a command.`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command\n%s", types.ErrInvalidParameter, usage)
	}
	switch args[0] {
	case "calc":
		opt, err := parseCalc(args[1:], out)
		if err != nil {
			return err
		}
		return runCalc(opt, out)
	case "quickstart":
		opt, err := parseQuickstart(args[1:], out)
		if err != nil {
			return err
		}
		return runQuickstart(opt, out)
	case "-h", "-help", "--help", "help":
		_, err := fmt.Fprintln(out, usage)
		return err
	}
	return fmt.Errorf("%w: unknown command %q\n%s", types.ErrInvalidParameter, args[0], usage)
}

func runCalc(opt *calcOptions, out io.Writer) error {
	c := zfactor.NewCalculator()
	var rec *debug.Charts
	if opt.Debug != "" {
		rec = &debug.Charts{}
		c.Solver.Debug = rec
	}
	r, err := c.CalcProps(opt.Params)
	if rec != nil {
		// 不收敛时同样输出记录
		if derr := writeDebug(rec, opt.Debug); derr != nil {
			log.Println(derr)
		}
	}
	if err != nil {
		return err
	}
	zm := opt.Params.ZModel
	if zm == types.ZModelUnset {
		zm = types.DAK
	}
	if !types.InRange(r.Pr, r.Tr, zm) {
		d, _ := zm.Descriptor()
		log.Printf("warning: Pr=%v Tr=%v is outside the range of zmodel=%q (Pr %v, Tr %v)",
			r.Pr, r.Tr, zm, d.Range.Pr, d.Range.Tr)
	}
	if !opt.Props {
		_, err = fmt.Fprintln(out, r.Z)
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Map())
}

// writeDebug 输出求解记录
func writeDebug(rec *debug.Charts, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if filepath.Ext(file) == ".html" {
		return rec.Render(f)
	}
	return rec.Record.Render(f)
}

func runQuickstart(opt *quickstartOptions, out io.Writer) error {
	results, p, err := quickstart.Run(opt.Options)
	if err != nil {
		if solver.IsConvergence(err) {
			log.Println("hint: try -smart or a different -guess")
		}
		return err
	}
	if opt.Out != "" {
		if err := quickstart.Save(p, opt.Options, opt.Out); err != nil {
			return err
		}
		fmt.Fprintf(out, "plot written to %s\n", opt.Out)
	}
	charts := &quickstart.Charts{Results: results, ZModel: opt.ZModel}
	if opt.HTML != "" {
		f, err := os.Create(opt.HTML)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := charts.Render(f); err != nil {
			return err
		}
		fmt.Fprintf(out, "chart written to %s\n", opt.HTML)
	}
	if opt.Serve != "" {
		http.HandleFunc("/", charts.Handler)
		log.Printf("serving chart on http://%s/", opt.Serve)
		return http.ListenAndServe(opt.Serve, nil)
	}
	return nil
}
