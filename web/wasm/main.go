//go:build js && wasm

// Command wasm exposes the filter analysis to the browser as
// FilterScope.analyze(params). params uses the config file keys
// (fs_hz, order, band, design, low_hz, ...); the result is the JSON
// report as a plain object, or {error: "..."}.
package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-filterscope/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-filterscope/dsp/filter/iir"
	"github.com/cwbudde/algo-filterscope/internal/analysis"
	"github.com/cwbudde/algo-filterscope/internal/config"
)

var (
	service *analysis.Service
	funcs   []js.Func
)

func main() {
	service = analysis.NewService(zerolog.New(consoleWriter{}).Level(zerolog.WarnLevel))

	api := js.Global().Get("Object").New()
	api.Set("analyze", export(func(args []js.Value) any {
		params := map[string]any{}
		if len(args) > 0 {
			params = toMap(args[0])
		}
		return analyze(params)
	}))

	api.Set("bandTypes", export(func([]js.Value) any {
		bands := iir.BandTypes()
		names := make([]any, len(bands))
		for i, b := range bands {
			names[i] = b.String()
		}
		return js.ValueOf(names)
	}))

	api.Set("designs", export(func([]js.Value) any {
		families := prototype.Families()
		names := make([]any, len(families))
		for i, f := range families {
			names[i] = f.String()
		}
		return js.ValueOf(names)
	}))

	js.Global().Set("FilterScope", api)
	select {}
}

func analyze(params map[string]any) any {
	cfg, err := config.FromMap(params)
	if err != nil {
		return failure(err)
	}
	spec, err := cfg.Spec()
	if err != nil {
		return failure(err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return failure(err)
	}

	report, err := service.Run(context.Background(), analysis.Request{Spec: spec, Options: opts})
	if err != nil {
		return failure(err)
	}
	data, err := json.Marshal(report)
	if err != nil {
		return failure(err)
	}
	return js.Global().Get("JSON").Call("parse", string(data))
}

func failure(err error) any {
	obj := js.Global().Get("Object").New()
	obj.Set("error", err.Error())
	return obj
}

func toMap(v js.Value) map[string]any {
	out := map[string]any{}
	if v.Type() != js.TypeObject {
		return out
	}
	keys := js.Global().Get("Object").Call("keys", v)
	for i := 0; i < keys.Length(); i++ {
		k := keys.Index(i).String()
		switch val := v.Get(k); val.Type() {
		case js.TypeNumber:
			out[k] = val.Float()
		case js.TypeString:
			out[k] = val.String()
		case js.TypeBoolean:
			out[k] = val.Bool()
		}
	}
	return out
}

// consoleWriter forwards log lines to console.log.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", string(p))
	return len(p), nil
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
