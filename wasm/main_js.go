//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/redlevel/api"
	"github.com/voxelsplace/redlevel/layout"
)

func bytesFromJS(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

func recordToJS(rec *layout.Record) js.Value {
	fields := js.Global().Get("Object").New()
	for _, v := range rec.Values {
		switch v.Kind {
		case layout.KindString:
			fields.Set(v.Name, v.Text)
		case layout.KindColors:
			arr := js.Global().Get("Array").New(len(v.Colors))
			for i, c := range v.Colors {
				arr.SetIndex(i, c.Hex())
			}
			fields.Set(v.Name, arr)
		}
	}
	result := js.Global().Get("Object").New()
	result.Set("layout", rec.Layout)
	result.Set("fields", fields)
	return result
}

// inspectLevel(layoutToml, Uint8Array) -> {layout, fields} | error string
func inspectLevel(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return js.ValueOf("missing layout or level bytes")
	}
	rec, err := api.DecodeLevel(args[0].String(), bytesFromJS(args[1]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return recordToJS(rec)
}

// palette2glb(layoutToml, Uint8Array, field) -> Uint8Array | error string
func palette2glb(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return js.ValueOf("missing layout, level bytes or field")
	}
	rec, err := api.DecodeLevel(args[0].String(), bytesFromJS(args[1]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	p, err := api.RecordPalette(rec, args[2].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	out, err := api.PaletteToGLB(p)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

func main() {
	js.Global().Set("inspectLevel", js.FuncOf(inspectLevel))
	js.Global().Set("palette2glb", js.FuncOf(palette2glb))
	select {}
}
