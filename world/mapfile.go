package world

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/oerror"
	"gopkg.in/yaml.v3"
)

//go:embed maps/training.yaml
var trainingMap []byte

// MapSpec is the on-disk description of a map.
type MapSpec struct {
	Name    string      `yaml:"name"`
	Spawn   [3]float32  `yaml:"spawn"`
	Targets BoxSpec     `yaml:"targets"`
	Solids  []SolidSpec `yaml:"solids"`
}

// BoxSpec is an axis aligned box given by two corners.
type BoxSpec struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

// SolidSpec is a named box of solid geometry.
type SolidSpec struct {
	Name    string `yaml:"name"`
	BoxSpec `yaml:",inline"`
}

// Box converts the spec into a bounding box. Corners given in the wrong order are swapped.
func (b BoxSpec) Box() cube.BBox {
	return cube.Box(b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}

// Default returns the built-in training map.
func Default() *World {
	w, err := Decode(trainingMap)
	if err != nil {
		panic(fmt.Errorf("built-in map is invalid: %w", err))
	}
	return w
}

// Load reads and decodes a map file.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	return Decode(data)
}

// Decode decodes a YAML map.
func Decode(data []byte) (*World, error) {
	var spec MapSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("error decoding map: %w", err)
	}
	if spec.Name == "" {
		return nil, oerror.New("map has no name")
	}
	if len(spec.Solids) == 0 {
		return nil, oerror.New("map %q has no solids", spec.Name)
	}

	solids := make([]Solid, 0, len(spec.Solids))
	for i, s := range spec.Solids {
		if s.Min[0] == s.Max[0] || s.Min[1] == s.Max[1] || s.Min[2] == s.Max[2] {
			return nil, oerror.New("solid %d (%s) of map %q has no volume", i, s.Name, spec.Name)
		}
		solids = append(solids, Solid{Name: s.Name, Box: s.Box()})
	}
	return New(spec.Name, solids, mgl32.Vec3(spec.Spawn), spec.Targets.Box()), nil
}
