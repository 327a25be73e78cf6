// Command export writes the test scenes as OBJ files, together with a JSON
// index of the render settings, for use with external renderers.
// Run from the render3d module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/render3d/obj"
	"seehuhn.de/go/render3d/testcases"
)

const sceneDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := name + ".obj"
			if err := writeOBJ(filepath.Join(sceneDir, fname), tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.Scenes = append(out.Scenes, toJSON(name, fname, tc))
		}
	}

	f, err := os.Create(filepath.Join(sceneDir, "scenes.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name      string      `json:"name"`
	File      string      `json:"file"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Mode      string      `json:"mode"`
	Transform [][]float64 `json:"transform"`
	Light     [3]float64  `json:"light"`
}

func toJSON(name, fname string, tc testcases.TestCase) jsonScene {
	opt := tc.Options()
	js := jsonScene{
		Name:   name,
		File:   fname,
		Width:  tc.Width,
		Height: tc.Height,
		Mode:   opt.Mode.String(),
		Light:  [3]float64{opt.Light.X, opt.Light.Y, opt.Light.Z},
	}
	for i := range 4 {
		row := opt.Transform[i]
		js.Transform = append(js.Transform, []float64{row.X, row.Y, row.Z, row.W})
	}
	return js
}

func writeOBJ(fname string, tc testcases.TestCase) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return obj.Write(f, tc.Mesh())
}
