package main

import (
	"flag"
	"fmt"
	"io"
	"zfactor"
	"zfactor/pseudocritical"
	"zfactor/quickstart"
	"zfactor/solver"
	"zfactor/types"

	"gonum.org/v1/plot/vg"
)

// calcOptions calc 子命令参数
type calcOptions struct {
	Params zfactor.Params
	Props  bool   // 输出全部中间结果
	Debug  string // 求解记录输出文件
}

// parseCalc 解析 calc 子命令
func parseCalc(args []string, out io.Writer) (*calcOptions, error) {
	opt := &calcOptions{}
	p := &opt.Params
	p.Extra = map[string]float64{}
	var (
		pmodel, zmodel string
		maxIter        int
		tol            float64
		newton         bool
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Var(floatFlag{&p.SG}, "sg", "gas specific gravity (air = 1)")
	fs.Var(floatFlag{&p.P}, "p", "pressure (psig)")
	fs.Var(floatFlag{&p.T}, "t", "temperature (°F)")
	fs.Var(floatFlag{&p.H2S}, "h2s", "H2S mole fraction")
	fs.Var(floatFlag{&p.CO2}, "co2", "CO2 mole fraction")
	fs.Var(floatFlag{&p.N2}, "n2", "N2 mole fraction (piper only)")
	fs.Var(floatFlag{&p.Pr}, "pr", "pseudo-reduced pressure")
	fs.Var(floatFlag{&p.Tr}, "tr", "pseudo-reduced temperature")
	fs.Var(extraFlag{p.Extra, pseudocritical.KeyTpc}, "tpc", "pseudo-critical temperature (°R)")
	fs.Var(extraFlag{p.Extra, pseudocritical.KeyPpc}, "ppc", "pseudo-critical pressure (psia)")
	fs.Var(extraFlag{p.Extra, pseudocritical.KeyJ}, "j", "Piper J parameter")
	fs.Var(extraFlag{p.Extra, pseudocritical.KeyK}, "k", "Piper K parameter")
	fs.Var(extraFlag{p.Extra, pseudocritical.KeyECorrection}, "e", "Wichert-Aziz correction (°R)")
	fs.StringVar(&pmodel, "pmodel", "piper", "pseudo-critical model "+types.PModelNames())
	fs.StringVar(&zmodel, "zmodel", "DAK", "Z-factor model "+types.ZModelNames())
	fs.Var(floatFlag{&p.Guess}, "guess", "initial guess for implicit models")
	fs.IntVar(&maxIter, "maxiter", 0, "maximum iterations per guess")
	fs.Float64Var(&tol, "tol", 0, "absolute tolerance")
	fs.BoolVar(&newton, "newton", false, "use Newton's method instead of secant")
	fs.Var(boolFlag{&p.SmartGuess}, "smart", "try the explicit model's value as the first guess")
	fs.BoolVar(&opt.Props, "props", false, "print all properties as JSON")
	fs.BoolVar(&p.IgnoreConflict, "ignore-conflict", false, "let given values override computed ones")
	fs.StringVar(&opt.Debug, "debug", "", "write solver attempts to FILE (.html for charts, JSON otherwise)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", types.ErrInvalidParameter, fs.Args())
	}
	var err error
	if p.ZModel, err = types.ParseZModel(zmodel); err != nil {
		return nil, err
	}
	if p.PModel, err = types.ParsePModel(pmodel); err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		p.Extra = nil
	}
	if maxIter != 0 || tol != 0 || newton {
		p.Solver = &solver.Options{MaxIter: maxIter, Tol: tol}
		if newton {
			p.Solver.Method = solver.MethodNewton
		}
	}
	return opt, nil
}

// quickstartOptions quickstart 子命令参数
type quickstartOptions struct {
	quickstart.Options
	Out   string // 图片文件
	HTML  string // 网页文件
	Serve string // 网页服务地址
}

// parseQuickstart 解析 quickstart 子命令
func parseQuickstart(args []string, out io.Writer) (*quickstartOptions, error) {
	opt := &quickstartOptions{Options: quickstart.DefaultOptions()}
	var (
		zmodel        string
		width, height float64
	)
	fs := flag.NewFlagSet("quickstart", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&zmodel, "zmodel", "DAK", "Z-factor model "+types.ZModelNames())
	fs.Float64Var(&opt.PrMin, "prmin", opt.PrMin, "minimum pseudo-reduced pressure")
	fs.Float64Var(&opt.PrMax, "prmax", opt.PrMax, "maximum pseudo-reduced pressure")
	fs.Float64Var(&width, "width", 8, "figure width (inch)")
	fs.Float64Var(&height, "height", 5, "figure height (inch)")
	fs.StringVar(&opt.TitleBold, "title-bold", "", "bold part of the title")
	fs.StringVar(&opt.TitlePlain, "title-plain", "", "plain part of the title")
	fs.BoolVar(&opt.DisableTrAnnotation, "no-annotation", false, "do not annotate Tr on each curve")
	fs.Var(boolFlag{&opt.Calc.SmartGuess}, "smart", "try the explicit model's value as the first guess")
	fs.Var(floatFlag{&opt.Calc.Guess}, "guess", "initial guess for implicit models")
	fs.StringVar(&opt.Out, "out", "quickstart.png", "image file, format from extension")
	fs.StringVar(&opt.HTML, "html", "", "write an interactive chart to FILE")
	fs.StringVar(&opt.Serve, "serve", "", "serve the interactive chart on ADDR")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	var err error
	if opt.ZModel, err = types.ParseZModel(zmodel); err != nil {
		return nil, err
	}
	opt.Width, opt.Height = vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch
	return opt, nil
}
